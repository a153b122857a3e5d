package catalog

import (
	"context"
	"fmt"

	"github.com/de-tools/field-atlas/pkg/adapters"
	"github.com/de-tools/field-atlas/pkg/models/api"
	"github.com/de-tools/field-atlas/pkg/models/domain"
	"github.com/de-tools/field-atlas/pkg/store/client"
)

type SessionProvider interface {
	WithSession(ctx context.Context, fn func(ctx context.Context, s *client.Session) error) error
}

type CatalogReader interface {
	PublishedDatasources(ctx context.Context, s *client.Session) ([]api.PublishedDatasource, error)
	CalculatedFields(ctx context.Context, s *client.Session) ([]api.CalculatedField, error)
}

// Fetcher pulls the full catalog inside one short-lived session.
type Fetcher struct {
	sessions SessionProvider
	reader   CatalogReader
}

func NewFetcher(sessions SessionProvider, reader CatalogReader) *Fetcher {
	return &Fetcher{sessions: sessions, reader: reader}
}

func (f *Fetcher) FetchCatalog(ctx context.Context) (domain.Catalog, error) {
	var (
		datasources []api.PublishedDatasource
		fields      []api.CalculatedField
	)

	err := f.sessions.WithSession(ctx, func(ctx context.Context, s *client.Session) error {
		var err error
		datasources, err = f.reader.PublishedDatasources(ctx, s)
		if err != nil {
			return fmt.Errorf("failed to list published datasources: %w", err)
		}
		fields, err = f.reader.CalculatedFields(ctx, s)
		if err != nil {
			return fmt.Errorf("failed to list calculated fields: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Catalog{}, err
	}

	return BuildCatalog(
		ctx,
		adapters.MapPublishedDatasourcesApiToDomain(datasources),
		adapters.MapCalculatedFieldsApiToDomain(fields),
	), nil
}
