package commands

import (
	"fmt"
	"strings"

	"github.com/de-tools/field-atlas/pkg/services/config"
	"github.com/spf13/cobra"
)

type ProfilesCmd struct {
	flags *GlobalFlags
}

func NewProfilesCmd(flags *GlobalFlags) *cobra.Command {
	pc := &ProfilesCmd{flags: flags}
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the profiles defined in the config file",
		Args:  cobra.NoArgs,
		RunE:  pc.run,
	}
}

func (pc *ProfilesCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	registry, err := config.NewRegistry(pc.flags.ProfilePath)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", pc.flags.ProfilePath, err)
	}

	profiles, err := registry.GetProfiles(ctx)
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}
	if len(profiles) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No profiles found in: %s\n", pc.flags.ProfilePath)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Profiles in %s:\n%s\n",
		pc.flags.ProfilePath,
		strings.Join(profiles, "\n"))

	return nil
}
