package output

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/yndnr/snaptree-go/internal/core/snapshot"
	"github.com/yndnr/snaptree-go/internal/storage/record"
)

// maxCell caps the width of state summaries in tables.
const maxCell = 48

// TreeTable lays a snapshot tree out one node per row, names indented by
// depth. Wide tables add props, context and timing columns.
func TreeTable(tree *snapshot.Tree, wide bool) *Table {
	t := &Table{Headers: []string{"NODE", "STATE", "TAG", "INDEX"}}
	if wide {
		t.Headers = append(t.Headers, "PROPS", "CONTEXT", "DURATION")
	}
	for _, row := range tree.Flatten() {
		n := row.Node
		cells := []string{
			strings.Repeat("  ", row.Depth-1) + n.Name,
			StateSummary(n.State),
			dash(n.TagID),
			indexCell(n.Data),
		}
		if wide {
			cells = append(cells,
				keysCell(n.Data.Props),
				keysCell(n.Data.Context),
				durationCell(n.Data.ActualDuration),
			)
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

// RecordTable lists record store entries.
func RecordTable(entries []record.Entry) *Table {
	t := &Table{Headers: []string{"INDEX", "MUTATOR"}}
	for _, e := range entries {
		t.AddRow(strconv.Itoa(e.Index), typeName(e.Mutator))
	}
	return t
}

// StateSummary renders a state in one short line.
func StateSummary(s snapshot.State) string {
	switch s.Kind() {
	case snapshot.KindValue:
		v, _ := s.Value()
		return truncate(compact(v))
	case snapshot.KindHooks:
		entries := s.Hooks()
		parts := make([]string, len(entries))
		for i, e := range entries {
			parts[i] = e.Name + "=" + compact(e.Value)
		}
		return truncate(strings.Join(parts, " "))
	default:
		return s.String()
	}
}

func indexCell(d snapshot.Data) string {
	if d.Index != nil {
		return strconv.Itoa(*d.Index)
	}
	if len(d.HooksIndex) == 0 {
		return "-"
	}
	parts := make([]string, len(d.HooksIndex))
	for i, idx := range d.HooksIndex {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ",")
}

func keysCell(m map[string]any) string {
	if len(m) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return truncate(strings.Join(keys, ","))
}

func durationCell(d *float64) string {
	if d == nil {
		return "-"
	}
	return fmt.Sprintf("%.2fms", *d)
}

func compact(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) <= maxCell {
		return s
	}
	return string(r[:maxCell-3]) + "..."
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func typeName(v any) string {
	if v == nil {
		return "-"
	}
	return reflect.TypeOf(v).String()
}
