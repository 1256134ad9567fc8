package commands

import (
	"encoding/json"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/odataq/pkg/ast"
	"github.com/leapstack-labs/odataq/pkg/parser"
)

// Result is the rendered outcome of parsing one token.
type Result struct {
	Input string `json:"input"`
	Kind  string `json:"kind"`
	Value string `json:"value,omitempty"`
	Error string `json:"error,omitempty"`

	ok bool
}

func parseToken(tok string) Result {
	expr, err := parser.Parse(tok)
	if err != nil {
		return Result{Input: tok, Kind: errorKind(err), Error: err.Error()}
	}
	return Result{Input: tok, Kind: kindOf(expr), Value: expr.String(), ok: true}
}

func kindOf(expr ast.Expr) string {
	switch expr.(type) {
	case ast.Null:
		return "null"
	case ast.Boolean:
		return "boolean"
	case ast.Integer:
		return "integer"
	case ast.Float:
		return "float"
	case ast.String:
		return "string"
	case ast.GUID:
		return "guid"
	case ast.Date:
		return "date"
	case ast.Time:
		return "time"
	case ast.DateTimeOffset:
		return "datetimeoffset"
	case ast.Duration:
		return "duration"
	case ast.Binary:
		return "binary"
	case ast.Identifier:
		return "identifier"
	case ast.Qualified:
		return "qualified name"
	default:
		return "unknown"
	}
}

func errorKind(err error) string {
	switch err.(type) {
	case *parser.DomainError:
		return "domain error"
	case *parser.TrailingInputError:
		return "trailing input"
	default:
		return "syntax error"
	}
}

func renderResults(w io.Writer, results []Result, format string) error {
	switch format {
	case "json":
		return renderJSON(w, results)
	default:
		return renderTable(w, results)
	}
}

func renderJSON(w io.Writer, results []Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func renderTable(w io.Writer, results []Result) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Input", "Kind", "Value"})

	for _, r := range results {
		val := r.Value
		if r.Error != "" {
			val = r.Error
		}
		t.AppendRow(table.Row{r.Input, r.Kind, val})
	}

	t.Render()
	return nil
}
