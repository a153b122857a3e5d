package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/de-tools/field-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_Handle(t *testing.T) {
	var buf bytes.Buffer
	report := &domain.FieldReport{
		Datasource: domain.DataSource{Index: 1, LUID: "L1", Name: "Sales"},
		Fields: []domain.FieldMetadata{
			{FieldName: "Profit", DataType: "REAL", DefaultAggregation: "SUM"},
			{FieldName: "Profit Ratio", DataType: "REAL", DefaultAggregation: "AGG", Formula: "SUM([Profit])/SUM([Sales])"},
		},
	}

	err := NewReporter(&buf).Handle(report)

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Metadata for the Datasource: Sales")
	assert.Contains(t, out, "| Field Name   | Data Type | Default Aggregation | Formula                    |")
	assert.Contains(t, out, "| Profit       | REAL      | SUM                 |                            |")
	assert.Contains(t, out, "| Profit Ratio | REAL      | AGG                 | SUM([Profit])/SUM([Sales]) |")
	assert.Contains(t, out, "+--------------+-----------+---------------------+----------------------------+")
	assert.Contains(t, out, "2 fields")
}

func TestReporter_Handle_TruncatesAndFlattens(t *testing.T) {
	var buf bytes.Buffer
	report := &domain.FieldReport{
		Datasource: domain.DataSource{Name: "Ops"},
		Fields: []domain.FieldMetadata{{
			FieldName: "Bucket",
			DataType:  "STRING",
			Formula:   "IF [Qty] > 10\nTHEN 'big'\nELSE 'small' END",
		}},
	}
	config := DefaultTableConfig()
	config.FormulaWidth = 16

	err := NewReporterWithConfig(&buf, config).Handle(report)

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "| IF [Qty] > 10... |")
	for _, line := range strings.Split(out, "\n") {
		assert.NotContains(t, line, "THEN")
	}
}

func TestReporter_Handle_NoFields(t *testing.T) {
	var buf bytes.Buffer

	err := NewReporter(&buf).Handle(&domain.FieldReport{Datasource: domain.DataSource{Name: "Empty"}})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "0 fields")
}

func TestFit(t *testing.T) {
	assert.Equal(t, "abc", fit("abc", 5))
	assert.Equal(t, "ab...", fit("abcdefgh", 5))
	assert.Equal(t, "ab", fit("abcdefgh", 2))
	assert.Equal(t, "a b", fit("a\n\tb", 5))
}
