package client

import (
	"context"
	"errors"
	"net/http"

	"github.com/de-tools/field-atlas/pkg/models/api"
)

// VizQLClient reads field metadata through the VizQL Data Service.
type VizQLClient struct {
	client *Client
}

func NewVizQLClient(client *Client) *VizQLClient {
	return &VizQLClient{client: client}
}

// ReadMetadata returns every field of the data source identified by luid.
func (v *VizQLClient) ReadMetadata(ctx context.Context, token, luid string) ([]api.FieldMetadata, error) {
	op := "read metadata " + luid

	var resp api.ReadMetadataResponse
	err := v.client.do(ctx, request{
		op:     op,
		method: http.MethodPost,
		path:   []string{"api", "v1", "vizql-data-service", "read-metadata"},
		token:  token,
		body:   api.ReadMetadataRequest{Datasource: api.DatasourceRef{DatasourceLUID: luid}},
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, malformed(op, http.StatusOK, errors.New("missing data"))
	}
	return *resp.Data, nil
}
