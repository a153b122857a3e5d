package domain

// DataSource is a published data source as listed to the user.
type DataSource struct {
	Index int // 1-based position in the listing
	LUID  string
	Name  string
}

// CalculatedField is a user-authored field definition from the catalog.
type CalculatedField struct {
	QualifiedName  string // brackets stripped, owner qualifier removed
	Formula        string
	DatasourceName string
}

// CatalogRow links a calculated field to the published data source that owns it.
type CatalogRow struct {
	Datasource DataSource
	Field      CalculatedField
}

// Catalog is the result of joining the published data sources with the calculated fields.
type Catalog struct {
	Datasources []DataSource
	Rows        []CatalogRow
}

// Lookup returns the data source displayed at the given 1-based index.
func (c Catalog) Lookup(index int) (DataSource, bool) {
	if index < 1 || index > len(c.Datasources) {
		return DataSource{}, false
	}
	return c.Datasources[index-1], true
}

// Scope returns the rows owned by the data source with the given luid.
func (c Catalog) Scope(luid string) []CatalogRow {
	var rows []CatalogRow
	for _, row := range c.Rows {
		if row.Datasource.LUID == luid {
			rows = append(rows, row)
		}
	}
	return rows
}

// Selection is the outcome of a successful interactive choice.
type Selection struct {
	Datasource DataSource
	Rows       []CatalogRow
}
