package interactive

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/de-tools/field-atlas/pkg/models/domain"
)

const (
	selectionQuestion = "\nPlease enter the ID of the datasource you want: "

	reasonNotNumber  = "Please enter a valid number."
	reasonOutOfRange = "Invalid ID."
)

// Selector lists the catalog and lets the user pick one data source by its index.
type Selector struct {
	prompt  *Prompt
	console *Console
	siteURL string
}

func NewSelector(prompt *Prompt, console *Console, siteURL string) *Selector {
	return &Selector{prompt: prompt, console: console, siteURL: siteURL}
}

// Select returns a *domain.SelectionError for input that is not a listed index.
func (s *Selector) Select(cat domain.Catalog) (domain.Selection, error) {
	if err := s.console.Listing(s.siteURL, cat.Datasources); err != nil {
		return domain.Selection{}, err
	}

	line, err := s.prompt.ReadLine(selectionQuestion)
	if errors.Is(err, io.EOF) {
		return domain.Selection{}, &domain.SelectionError{Reason: reasonNotNumber}
	}
	if err != nil {
		return domain.Selection{}, err
	}

	index, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return domain.Selection{}, &domain.SelectionError{Input: line, Reason: reasonNotNumber}
	}

	ds, ok := cat.Lookup(index)
	if !ok {
		return domain.Selection{}, &domain.SelectionError{Input: line, Reason: reasonOutOfRange}
	}

	if err := s.console.Selected(ds); err != nil {
		return domain.Selection{}, err
	}
	return domain.Selection{Datasource: ds, Rows: cat.Scope(ds.LUID)}, nil
}
