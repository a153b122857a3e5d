package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/de-tools/field-atlas/pkg/models/api"
	"github.com/de-tools/field-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

var (
	publishedDatasourcesQuery = MustParseQuery("publishedDatasources", `
		{
			publishedDatasources {
				luid
				name
			}
		}`)

	calculatedFieldsQuery = MustParseQuery("calculatedFields", `
		{
			calculatedFields {
				fullyQualifiedName
				formula
				datasource {
					name
				}
			}
		}`)
)

// MetadataClient runs catalog queries against the metadata API.
type MetadataClient struct {
	client *Client
}

func NewMetadataClient(client *Client) *MetadataClient {
	return &MetadataClient{client: client}
}

// PublishedDatasources lists every published data source visible on the site.
func (m *MetadataClient) PublishedDatasources(ctx context.Context, s *Session) ([]api.PublishedDatasource, error) {
	var data api.PublishedDatasourcesData
	if err := m.Query(ctx, s, publishedDatasourcesQuery, &data); err != nil {
		return nil, err
	}
	return data.PublishedDatasources, nil
}

// CalculatedFields lists the calculated fields of all data sources on the site.
func (m *MetadataClient) CalculatedFields(ctx context.Context, s *Session) ([]api.CalculatedField, error) {
	var data api.CalculatedFieldsData
	if err := m.Query(ctx, s, calculatedFieldsQuery, &data); err != nil {
		return nil, err
	}
	return data.CalculatedFields, nil
}

// Query runs q and decodes its data payload into out.
func (m *MetadataClient) Query(ctx context.Context, s *Session, q *Query, out any) error {
	op := "metadata query " + q.Name

	var resp api.GraphQLResponse
	err := m.client.do(ctx, request{
		op:     op,
		method: http.MethodPost,
		path:   []string{"api", "metadata", "graphql"},
		token:  s.Token,
		body:   api.GraphQLRequest{Query: q.String()},
	}, &resp)
	if err != nil {
		return err
	}

	if len(resp.Errors) > 0 {
		messages := make([]string, 0, len(resp.Errors))
		for _, e := range resp.Errors {
			messages = append(messages, e.Message)
		}
		zerolog.Ctx(ctx).Warn().Strs("errors", messages).Str("query", q.Name).Msg("metadata query returned errors")
		return &domain.APIError{
			Op:         op,
			StatusCode: http.StatusOK,
			Err:        fmt.Errorf("%w: %s", domain.ErrMetadataFetch, strings.Join(messages, "; ")),
		}
	}

	if len(resp.Data) == 0 || string(resp.Data) == "null" {
		return malformed(op, http.StatusOK, errors.New("missing data"))
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return malformed(op, http.StatusOK, err)
	}
	return nil
}
