// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/exp/slices"
)

// TablePrinter renders data as a text table. Lists of objects, such as the
// device list inside a search result, become one row per object with a column
// per object key; other objects become key/value rows, and scalars a single
// cell.
type TablePrinter struct {
	// Style optionally overrides the go-pretty table style.
	Style *table.Style
}

// Print renders data as a table.
func (p *TablePrinter) Print(w io.Writer, data any) error {
	v, err := generic(data)
	if err != nil {
		return err
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	if p.Style != nil {
		t.SetStyle(*p.Style)
	}
	if rows, ok := listing(v); ok {
		columns := columnsOf(rows)
		header := table.Row{}
		for _, col := range columns {
			header = append(header, col)
		}
		t.AppendHeader(header)
		for _, obj := range rows {
			row := table.Row{}
			for _, col := range columns {
				row = append(row, cell(obj[col]))
			}
			t.AppendRow(row)
		}
		t.Render()
		return nil
	}
	switch v := v.(type) {
	case map[string]any:
		t.AppendHeader(table.Row{"KEY", "VALUE"})
		for _, key := range sortedKeys(v) {
			t.AppendRow(table.Row{key, cell(v[key])})
		}
	default:
		t.AppendRow(table.Row{cell(v)})
	}
	t.Render()
	return nil
}

// listing returns the list of objects to be shown one per row: either the
// data itself is a non-empty list of objects, or an object with exactly one
// such list among its values (as is the case for search results).
func listing(v any) ([]map[string]any, bool) {
	if rows, ok := objects(v); ok {
		return rows, true
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	var found []map[string]any
	for _, val := range m {
		if rows, ok := objects(val); ok {
			if found != nil {
				return nil, false
			}
			found = rows
		}
	}
	return found, found != nil
}

// objects returns the elements of a non-empty list consisting only of
// objects.
func objects(v any) ([]map[string]any, bool) {
	l, ok := v.([]any)
	if !ok || len(l) == 0 {
		return nil, false
	}
	rows := make([]map[string]any, 0, len(l))
	for _, el := range l {
		obj, ok := el.(map[string]any)
		if !ok {
			return nil, false
		}
		rows = append(rows, obj)
	}
	return rows, true
}

// columnsOf returns the sorted union of all keys of the specified objects.
func columnsOf(rows []map[string]any) []string {
	columns := []string{}
	for _, obj := range rows {
		for key := range obj {
			if !slices.Contains(columns, key) {
				columns = append(columns, key)
			}
		}
	}
	slices.Sort(columns)
	return columns
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// cell returns the text of a single table cell; nested lists and objects are
// shown as compact JSON.
func cell(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case map[string]any, []any:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	default:
		return fmt.Sprint(v)
	}
}
