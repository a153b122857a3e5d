package api

type DatasourceRef struct {
	DatasourceLUID string `json:"datasourceLuid"`
}

type ReadMetadataRequest struct {
	Datasource DatasourceRef `json:"datasource"`
}

type FieldMetadata struct {
	FieldName          string `json:"fieldName"`
	FieldCaption       string `json:"fieldCaption,omitempty"`
	DataType           string `json:"dataType"`
	DefaultAggregation string `json:"defaultAggregation"`
	LogicalTableID     string `json:"logicalTableId,omitempty"`
}

type ReadMetadataResponse struct {
	Data *[]FieldMetadata `json:"data"`
}
