package csv

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewTable(t *testing.T) {
	records := []Row{
		{"header1", "header2"},
		{"value1", "value2"},
		{"value3", "value4"},
	}
	table, err := NewTable(records, true, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectedHeader := Row{"header1", "header2"}
	if !reflect.DeepEqual(table.Header, expectedHeader) {
		t.Errorf("expected header %v, but got %v", expectedHeader, table.Header)
	}
	expectedBody := []Row{
		{"value1", "value2"},
		{"value3", "value4"},
	}
	if !reflect.DeepEqual(table.Body, expectedBody) {
		t.Errorf("expected body %v, but got %v", expectedBody, table.Body)
	}
	if table.NumColumns() != 2 {
		t.Errorf("expected 2 columns, but got %d", table.NumColumns())
	}
}

func TestNewTable_columns(t *testing.T) {
	records := []Row{
		{"1", "2"},
		{"3", "4"},
	}
	columns := []string{"x", "y", "z"}
	table, err := NewTable(records, false, columns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(table.Header, Row{"x", "y", "z"}) {
		t.Errorf("expected header %v, but got %v", columns, table.Header)
	}
	// the first line is data when the header comes from columns
	if !reflect.DeepEqual(table.Body, records) {
		t.Errorf("expected body %v, but got %v", records, table.Body)
	}
	if table.NumColumns() != 3 {
		t.Errorf("expected 3 columns, but got %d", table.NumColumns())
	}

	columns[0] = "changed"
	if table.Header[0] != "x" {
		t.Error("expected header to be copied from columns")
	}
}

func TestNewTable_empty(t *testing.T) {
	_, err := NewTable([]Row{}, true, nil)
	if !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, but got %v", err)
	}
	_, err = NewTable(nil, false, []string{"x"})
	if !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, but got %v", err)
	}
}
