package api

import "encoding/json"

type GraphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type GraphQLError struct {
	Message string   `json:"message"`
	Path    []string `json:"path,omitempty"`
}

// GraphQLResponse keeps Data raw so a missing payload can be told apart from an empty one.
type GraphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors,omitempty"`
}

type PublishedDatasource struct {
	LUID string `json:"luid"`
	Name string `json:"name"`
}

type PublishedDatasourcesData struct {
	PublishedDatasources []PublishedDatasource `json:"publishedDatasources"`
}

type CalculatedFieldOwner struct {
	Name string `json:"name"`
}

type CalculatedField struct {
	FullyQualifiedName string                `json:"fullyQualifiedName"`
	Formula            string                `json:"formula"`
	Datasource         *CalculatedFieldOwner `json:"datasource"`
}

type CalculatedFieldsData struct {
	CalculatedFields []CalculatedField `json:"calculatedFields"`
}
