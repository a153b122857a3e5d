package catalog

import (
	"context"
	"strings"

	"github.com/de-tools/field-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

var bracketReplacer = strings.NewReplacer("[", "", "]", "")

// NormalizeQualifiedName turns "[Sales].[Profit Ratio]" owned by "Sales" into "Profit Ratio".
// The owner qualifier is only dropped when it names the owning data source.
func NormalizeQualifiedName(owner, name string) string {
	if owner != "" {
		name = strings.TrimPrefix(name, "["+owner+"].")
	}
	return bracketReplacer.Replace(name)
}

// BuildCatalog numbers the data sources 1..N and attaches every calculated field to the
// published data source it belongs to. Fields whose owner is not published are dropped.
// When a name is shared by several data sources the first one listed wins.
func BuildCatalog(ctx context.Context, datasources []domain.DataSource, fields []domain.CalculatedField) domain.Catalog {
	logger := zerolog.Ctx(ctx)

	listed := make([]domain.DataSource, 0, len(datasources))
	byName := make(map[string]domain.DataSource, len(datasources))
	for i, ds := range datasources {
		ds.Index = i + 1
		listed = append(listed, ds)

		if first, exists := byName[ds.Name]; exists {
			logger.Warn().
				Str("name", ds.Name).
				Str("luid", ds.LUID).
				Str("kept_luid", first.LUID).
				Msg("duplicate datasource name, calculated fields attach to the first match")
			continue
		}
		byName[ds.Name] = ds
	}

	var rows []domain.CatalogRow
	for _, f := range fields {
		ds, ok := byName[f.DatasourceName]
		if !ok || ds.LUID == "" {
			continue
		}
		f.QualifiedName = NormalizeQualifiedName(f.DatasourceName, f.QualifiedName)
		rows = append(rows, domain.CatalogRow{Datasource: ds, Field: f})
	}

	logger.Debug().
		Int("datasources", len(listed)).
		Int("calculated_fields", len(fields)).
		Int("joined", len(rows)).
		Msg("catalog joined")

	return domain.Catalog{Datasources: listed, Rows: rows}
}

// JoinFieldMetadata attaches formulas from the scoped catalog rows to the field list.
// Every field is kept in its original order; fields without a formula keep it empty.
func JoinFieldMetadata(fields []domain.FieldMetadata, rows []domain.CatalogRow) []domain.FieldMetadata {
	formulas := make(map[string]string, len(rows))
	for _, row := range rows {
		if _, exists := formulas[row.Field.QualifiedName]; exists {
			continue
		}
		formulas[row.Field.QualifiedName] = row.Field.Formula
	}

	res := make([]domain.FieldMetadata, 0, len(fields))
	for _, f := range fields {
		f.Formula = formulas[f.FieldName]
		res = append(res, f)
	}
	return res
}
