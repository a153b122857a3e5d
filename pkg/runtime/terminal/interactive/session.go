package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/de-tools/field-atlas/pkg/models/domain"
	"github.com/de-tools/field-atlas/pkg/runtime/terminal/export"
	"github.com/rs/zerolog"
)

const continueQuestion = "\nWould you like to choose another datasource? (y/n): "

type CatalogFetcher interface {
	FetchCatalog(ctx context.Context) (domain.Catalog, error)
}

type ReportBuilder interface {
	FieldReport(ctx context.Context, sel domain.Selection) (*domain.FieldReport, error)
}

type Options struct {
	Catalog CatalogFetcher
	Reports ReportBuilder
	Input   io.Reader
	Output  io.Writer
	SiteURL string
}

// Session runs the prompt/report loop until the user declines to continue.
type Session struct {
	catalog  CatalogFetcher
	reports  ReportBuilder
	prompt   *Prompt
	console  *Console
	selector *Selector
	reporter *export.Reporter
}

func NewSession(opts Options) *Session {
	prompt := NewPrompt(opts.Input, opts.Output)
	console := NewConsole(opts.Output)
	return &Session{
		catalog:  opts.Catalog,
		reports:  opts.Reports,
		prompt:   prompt,
		console:  console,
		selector: NewSelector(prompt, console, opts.SiteURL),
		reporter: export.NewReporter(opts.Output),
	}
}

// Run returns nil once the user declines to continue. Any error other than an
// invalid selection ends the loop.
func (s *Session) Run(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	for iteration := 1; ; iteration++ {
		logger.Debug().Int("iteration", iteration).Msg("prompting")

		if err := s.iterate(ctx); err != nil {
			return err
		}

		again, err := s.prompt.Confirm(continueQuestion)
		if err != nil {
			return fmt.Errorf("failed to read answer: %w", err)
		}
		if !again {
			logger.Debug().Int("iterations", iteration).Msg("exiting")
			return s.console.Goodbye()
		}
	}
}

func (s *Session) iterate(ctx context.Context) error {
	if err := s.console.Welcome(); err != nil {
		return err
	}

	cat, err := s.catalog.FetchCatalog(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch catalog: %w", err)
	}

	sel, err := s.selector.Select(cat)
	var selErr *domain.SelectionError
	if errors.As(err, &selErr) {
		zerolog.Ctx(ctx).Debug().Str("input", selErr.Input).Msg(selErr.Reason)
		return s.console.Notice(selErr.Reason)
	}
	if err != nil {
		return err
	}

	report, err := s.reports.FieldReport(ctx, sel)
	if err != nil {
		return err
	}
	return s.reporter.Handle(report)
}
