package client

import (
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"github.com/vektah/gqlparser/v2/parser"
)

// Query is a parsed, read-only GraphQL document holding exactly one query operation.
type Query struct {
	Name string
	text string
}

func (q *Query) String() string {
	return q.text
}

// ParseQuery checks the document syntax and rejects anything but a single query operation.
func ParseQuery(name, src string) (*Query, error) {
	doc, err := parser.ParseQuery(&ast.Source{Name: name, Input: src})
	if err != nil {
		return nil, fmt.Errorf("failed to parse query %s: %w", name, err)
	}
	if len(doc.Operations) != 1 {
		return nil, fmt.Errorf("query %s must contain exactly one operation, got %d", name, len(doc.Operations))
	}
	if op := doc.Operations[0].Operation; op != ast.Query {
		return nil, fmt.Errorf("query %s must be a read-only query, got %s", name, op)
	}

	var b strings.Builder
	formatter.NewFormatter(&b).FormatQueryDocument(doc)

	return &Query{Name: name, text: b.String()}, nil
}

func MustParseQuery(name, src string) *Query {
	q, err := ParseQuery(name, src)
	if err != nil {
		panic(err)
	}
	return q
}
