package domain

type FieldMetadata struct {
	FieldName          string
	FieldCaption       string
	DataType           string
	DefaultAggregation string
	LogicalTableID     string
	Formula            string // empty unless the field is calculated
}

// FieldReport is the table presented for a single data source.
type FieldReport struct {
	Datasource DataSource
	Fields     []FieldMetadata
}
