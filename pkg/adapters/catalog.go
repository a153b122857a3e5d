package adapters

import (
	"github.com/de-tools/field-atlas/pkg/models/api"
	"github.com/de-tools/field-atlas/pkg/models/domain"
)

// MapPublishedDatasourcesApiToDomain keeps the server ordering; indexes are assigned by the joiner.
func MapPublishedDatasourcesApiToDomain(items []api.PublishedDatasource) []domain.DataSource {
	res := make([]domain.DataSource, 0, len(items))
	for _, ds := range items {
		res = append(res, domain.DataSource{
			LUID: ds.LUID,
			Name: ds.Name,
		})
	}
	return res
}

func MapCalculatedFieldApiToDomain(f api.CalculatedField) domain.CalculatedField {
	res := domain.CalculatedField{
		QualifiedName: f.FullyQualifiedName,
		Formula:       f.Formula,
	}
	// fields of embedded sources may come back without an owner
	if f.Datasource != nil {
		res.DatasourceName = f.Datasource.Name
	}
	return res
}

func MapCalculatedFieldsApiToDomain(items []api.CalculatedField) []domain.CalculatedField {
	res := make([]domain.CalculatedField, 0, len(items))
	for _, f := range items {
		res = append(res, MapCalculatedFieldApiToDomain(f))
	}
	return res
}
