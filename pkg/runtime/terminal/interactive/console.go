package interactive

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/field-atlas/pkg/models/domain"
)

const (
	welcomeBanner = `     ========================================================
     ====== Welcome to Published Data Source Management======
     ========================================================

`
	goodbye = "Program is exiting... Good bye! Have a great day!\n"
)

var listingTemplate = template.Must(template.New("listing").Parse(`
There are {{len .Datasources}} published datasources on site ===> {{.SiteURL}}
{{range .Datasources}}{{printf "%4d" .Index}}  {{.Name}}
{{end}}`))

var selectedTemplate = template.Must(template.New("selected").Parse(`
*** Thank you! You selected: ***
==> Datasource Name: {{.Name}}
==> luid: {{.LUID}}

`))

// Console prints the interactive screens in plain text.
type Console struct {
	writer io.Writer
}

func NewConsole(writer io.Writer) *Console {
	if writer == nil {
		writer = os.Stdout
	}
	return &Console{writer: writer}
}

func (c *Console) Welcome() error {
	_, err := io.WriteString(c.writer, welcomeBanner)
	return err
}

func (c *Console) Listing(siteURL string, datasources []domain.DataSource) error {
	return listingTemplate.Execute(c.writer, struct {
		SiteURL     string
		Datasources []domain.DataSource
	}{SiteURL: siteURL, Datasources: datasources})
}

func (c *Console) Selected(ds domain.DataSource) error {
	return selectedTemplate.Execute(c.writer, ds)
}

func (c *Console) Notice(msg string) error {
	_, err := fmt.Fprintln(c.writer, msg)
	return err
}

func (c *Console) Goodbye() error {
	_, err := io.WriteString(c.writer, goodbye)
	return err
}
