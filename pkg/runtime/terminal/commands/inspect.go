package commands

import (
	"fmt"
	"net/http"

	"github.com/de-tools/field-atlas/pkg/runtime/terminal/interactive"
	"github.com/de-tools/field-atlas/pkg/services/catalog"
	"github.com/de-tools/field-atlas/pkg/services/config"
	"github.com/de-tools/field-atlas/pkg/store/client"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type InspectCmd struct {
	flags      *GlobalFlags
	httpClient *http.Client
}

// NewInspectCmd builds the interactive inspector. A nil httpClient uses one bounded by the configured timeout.
func NewInspectCmd(flags *GlobalFlags, httpClient *http.Client) *cobra.Command {
	ic := &InspectCmd{flags: flags, httpClient: httpClient}
	return &cobra.Command{
		Use:   "inspect",
		Short: "Browse published datasources and show their fields",
		Args:  cobra.NoArgs,
		RunE:  ic.Run,
	}
}

func (ic *InspectCmd) Run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(ctx, ic.flags.LoadOptions())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if cfg.LogLevel != "" {
		level, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
		}
		logger := zerolog.Ctx(ctx).Level(level)
		ctx = logger.WithContext(ctx)
	}

	zerolog.Ctx(ctx).Info().
		Str("server", cfg.ServerAddress).
		Str("site", cfg.Site).
		Str("api_version", cfg.APIVersion).
		Msg("configuration loaded")

	c := client.New(cfg, ic.httpClient)
	auth := client.NewAuthenticator(c, cfg)

	session := interactive.NewSession(interactive.Options{
		Catalog: catalog.NewFetcher(auth, client.NewMetadataClient(c)),
		Reports: catalog.NewInspector(auth, client.NewVizQLClient(c)),
		Input:   cmd.InOrStdin(),
		Output:  cmd.OutOrStdout(),
		SiteURL: cfg.SiteURL(),
	})
	return session.Run(ctx)
}
