package output

import (
	"encoding/json"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/yndnr/snaptree-go/internal/core/snapshot"
	"github.com/yndnr/snaptree-go/internal/storage/record"
)

// TableFormatter formats data as a plain-text table.
type TableFormatter struct {
	Wide      bool
	NoHeaders bool
}

// Format renders tables, snapshot trees and record listings. Other data
// falls back to JSON.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	switch v := data.(type) {
	case nil:
		return nil
	case *Table:
		return v.RenderWithOptions(w, f.NoHeaders)
	case Table:
		return v.RenderWithOptions(w, f.NoHeaders)
	case *snapshot.Tree:
		return TreeTable(v, f.Wide).RenderWithOptions(w, f.NoHeaders)
	case []record.Entry:
		return RecordTable(v).RenderWithOptions(w, f.NoHeaders)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Table represents tabular data.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Render renders the table to the writer.
func (t *Table) Render(w io.Writer) error {
	return t.RenderWithOptions(w, false)
}

// RenderWithOptions renders the table borderless, one row per line.
func (t *Table) RenderWithOptions(w io.Writer, noHeaders bool) error {
	tw := tablewriter.NewWriter(w)
	tw.SetAutoWrapText(false)
	tw.SetAutoFormatHeaders(false)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetBorder(false)
	tw.SetHeaderLine(false)
	tw.SetColumnSeparator("")
	tw.SetCenterSeparator("")
	tw.SetRowSeparator("")
	tw.SetTablePadding("  ")
	tw.SetNoWhiteSpace(true)

	if !noHeaders && len(t.Headers) > 0 {
		tw.SetHeader(t.Headers)
	}
	tw.AppendBulk(t.Rows)
	tw.Render()
	return nil
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// SetHeaders sets the table headers.
func (t *Table) SetHeaders(headers ...string) {
	t.Headers = headers
}
