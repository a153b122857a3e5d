package interactive

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/de-tools/field-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() domain.Catalog {
	sales := domain.DataSource{Index: 1, LUID: "L1", Name: "Sales"}
	hr := domain.DataSource{Index: 2, LUID: "L2", Name: "HR"}
	return domain.Catalog{
		Datasources: []domain.DataSource{sales, hr},
		Rows: []domain.CatalogRow{
			{Datasource: sales, Field: domain.CalculatedField{QualifiedName: "Profit Ratio", Formula: "SUM([Profit])/SUM([Sales])", DatasourceName: "Sales"}},
			{Datasource: hr, Field: domain.CalculatedField{QualifiedName: "Tenure", Formula: "1", DatasourceName: "HR"}},
		},
	}
}

func newTestSelector(input string) (*Selector, *bytes.Buffer) {
	var out bytes.Buffer
	prompt := NewPrompt(strings.NewReader(input), &out)
	return NewSelector(prompt, NewConsole(&out), "https://tableau.example.com#/finance"), &out
}

func TestSelector_Select_Valid(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.DataSource
		rows     int
	}{
		{input: "1\n", expected: domain.DataSource{Index: 1, LUID: "L1", Name: "Sales"}, rows: 1},
		{input: " 2 \n", expected: domain.DataSource{Index: 2, LUID: "L2", Name: "HR"}, rows: 1},
		{input: "2", expected: domain.DataSource{Index: 2, LUID: "L2", Name: "HR"}, rows: 1},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			selector, out := newTestSelector(tt.input)

			sel, err := selector.Select(sampleCatalog())

			require.NoError(t, err)
			assert.Equal(t, tt.expected, sel.Datasource)
			require.Len(t, sel.Rows, tt.rows)
			for _, row := range sel.Rows {
				assert.Equal(t, tt.expected.LUID, row.Datasource.LUID)
			}
			assert.Contains(t, out.String(), "There are 2 published datasources on site ===> https://tableau.example.com#/finance")
			assert.Contains(t, out.String(), "   1  Sales\n   2  HR\n")
			assert.Contains(t, out.String(), "==> Datasource Name: "+tt.expected.Name)
			assert.Contains(t, out.String(), "==> luid: "+tt.expected.LUID)
		})
	}
}

func TestSelector_Select_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		reason string
	}{
		{name: "zero", input: "0\n", reason: "Invalid ID."},
		{name: "past the end", input: "3\n", reason: "Invalid ID."},
		{name: "negative", input: "-1\n", reason: "Invalid ID."},
		{name: "not a number", input: "abc\n", reason: "Please enter a valid number."},
		{name: "empty line", input: "\n", reason: "Please enter a valid number."},
		{name: "no input", input: "", reason: "Please enter a valid number."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selector, out := newTestSelector(tt.input)

			_, err := selector.Select(sampleCatalog())

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidSelection)
			var selErr *domain.SelectionError
			require.True(t, errors.As(err, &selErr))
			assert.Equal(t, tt.reason, selErr.Reason)
			assert.NotContains(t, out.String(), "You selected")
		})
	}
}

func TestSelector_Select_EmptyCatalog(t *testing.T) {
	selector, out := newTestSelector("1\n")

	_, err := selector.Select(domain.Catalog{})

	assert.ErrorIs(t, err, domain.ErrInvalidSelection)
	assert.Contains(t, out.String(), "0 published datasources")
}
