package catalog

import (
	"context"
	"fmt"

	"github.com/de-tools/field-atlas/pkg/adapters"
	"github.com/de-tools/field-atlas/pkg/models/api"
	"github.com/de-tools/field-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

type MetadataReader interface {
	ReadMetadata(ctx context.Context, token, luid string) ([]api.FieldMetadata, error)
}

// Inspector builds the field report of a selected data source.
type Inspector struct {
	tokens TokenProvider
	reader MetadataReader
}

func NewInspector(tokens TokenProvider, reader MetadataReader) *Inspector {
	return &Inspector{tokens: tokens, reader: reader}
}

func (i *Inspector) FieldReport(ctx context.Context, sel domain.Selection) (*domain.FieldReport, error) {
	logger := zerolog.Ctx(ctx)

	token, err := i.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get REST token: %w", err)
	}

	fields, err := i.reader.ReadMetadata(ctx, token, sel.Datasource.LUID)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata of %s: %w", sel.Datasource.Name, err)
	}

	joined := JoinFieldMetadata(adapters.MapFieldMetadataListApiToDomain(fields), sel.Rows)
	logger.Debug().
		Str("datasource", sel.Datasource.Name).
		Int("fields", len(joined)).
		Int("calculated_fields", len(sel.Rows)).
		Msg("field report built")

	return &domain.FieldReport{Datasource: sel.Datasource, Fields: joined}, nil
}
