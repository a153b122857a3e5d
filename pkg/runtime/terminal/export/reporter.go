package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/de-tools/field-atlas/pkg/models/domain"
)

// TableConfig caps the column widths. Longer values are cut with an ellipsis.
type TableConfig struct {
	NameWidth        int
	TypeWidth        int
	AggregationWidth int
	FormulaWidth     int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:        40,
		TypeWidth:        12,
		AggregationWidth: 20,
		FormulaWidth:     60,
	}
}

var headers = [4]string{"Field Name", "Data Type", "Default Aggregation", "Formula"}

const ellipsis = "..."

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	return NewReporterWithConfig(writer, DefaultTableConfig())
}

func NewReporterWithConfig(writer io.Writer, config TableConfig) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: config,
	}
}

func (c *Reporter) Handle(report *domain.FieldReport) error {
	widths := c.widths(report.Fields)

	funcMap := template.FuncMap{
		"formatRow": func(cells ...string) string {
			var b strings.Builder
			b.WriteString("|")
			for i, cell := range cells {
				fmt.Fprintf(&b, " %-*s |", widths[i], fit(cell, widths[i]))
			}
			return b.String()
		},
		"separator": func() string {
			var b strings.Builder
			b.WriteString("+")
			for _, w := range widths {
				b.WriteString(strings.Repeat("-", w+2))
				b.WriteString("+")
			}
			return b.String()
		},
	}

	tmpl := `
======== Metadata for the Datasource: {{.Datasource.Name}} ========

{{separator}}
{{formatRow "Field Name" "Data Type" "Default Aggregation" "Formula"}}
{{separator}}
{{range .Fields}}{{formatRow .FieldName .DataType .DefaultAggregation .Formula}}
{{end}}{{separator}}
{{len .Fields}} fields
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}

// widths sizes each column to its longest value, bounded by the header and the config.
func (c *Reporter) widths(fields []domain.FieldMetadata) [4]int {
	limits := [4]int{c.config.NameWidth, c.config.TypeWidth, c.config.AggregationWidth, c.config.FormulaWidth}

	var widths [4]int
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, f := range fields {
		for i, v := range [4]string{f.FieldName, f.DataType, f.DefaultAggregation, f.Formula} {
			widths[i] = max(widths[i], utf8.RuneCountInString(flatten(v)))
		}
	}
	for i := range widths {
		if limits[i] > 0 {
			widths[i] = min(widths[i], max(limits[i], utf8.RuneCountInString(headers[i])))
		}
	}
	return widths
}

// flatten keeps multi-line formulas on a single table row.
func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func fit(s string, width int) string {
	s = flatten(s)
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	if width <= len(ellipsis) {
		return string([]rune(s)[:width])
	}
	return string([]rune(s)[:width-len(ellipsis)]) + ellipsis
}
