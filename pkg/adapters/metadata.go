package adapters

import (
	"github.com/de-tools/field-atlas/pkg/models/api"
	"github.com/de-tools/field-atlas/pkg/models/domain"
)

func MapFieldMetadataApiToDomain(f api.FieldMetadata) domain.FieldMetadata {
	return domain.FieldMetadata{
		FieldName:          f.FieldName,
		FieldCaption:       f.FieldCaption,
		DataType:           f.DataType,
		DefaultAggregation: f.DefaultAggregation,
		LogicalTableID:     f.LogicalTableID,
	}
}

func MapFieldMetadataListApiToDomain(items []api.FieldMetadata) []domain.FieldMetadata {
	res := make([]domain.FieldMetadata, 0, len(items))
	for _, f := range items {
		res = append(res, MapFieldMetadataApiToDomain(f))
	}
	return res
}
