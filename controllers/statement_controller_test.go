package controllers

import (
	"strings"
	"testing"
)

func TestReadAllRows_CSV(t *testing.T) {
	csvData := "Description,Amount,Type,Category\nGroceries,1200,expense,Food\nSalary,45000,income,Other\n"
	rows, err := readAllRows([]byte(csvData), ".csv")
	if err != nil {
		t.Fatalf("readAllRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[1][0] != "Groceries" {
		t.Errorf("rows[1][0] = %q, want Groceries", rows[1][0])
	}
}

func TestFindStatementHeader(t *testing.T) {
	rows := [][]string{
		{"Bank statement for August"},
		{""},
		{"Date", "Narration", "Category", "Amount"},
		{"2026-08-01", "Groceries", "Food", "1,200"},
	}
	idx, cols := findStatementHeader(rows)
	if idx != 2 {
		t.Fatalf("header index = %d, want 2", idx)
	}
	if cols.description != 1 || cols.amount != 3 || cols.category != 2 {
		t.Errorf("columns = %+v", cols)
	}
	if cols.txType != -1 {
		t.Errorf("txType column = %d, want -1 (absent)", cols.txType)
	}

	if idx, _ := findStatementHeader([][]string{{"a", "b"}, {"c"}}); idx != -1 {
		t.Errorf("header index = %d for headerless rows, want -1", idx)
	}
}

func TestRowToTransaction(t *testing.T) {
	cols := statementColumns{description: 0, amount: 1, txType: 2, category: 3}

	tx, ok := rowToTransaction([]string{"Dinner out", "₹1,250", "", ""}, cols, "2026-08")
	if !ok {
		t.Fatal("expected row to convert")
	}
	if tx.Amount != 1250 || tx.Type != "expense" || tx.Category != "Other" || tx.Month != "2026-08" {
		t.Errorf("tx = %+v", tx)
	}

	if _, ok := rowToTransaction([]string{"", "100"}, cols, "2026-08"); ok {
		t.Error("row without description should be skipped")
	}
	if _, ok := rowToTransaction([]string{"Refund", "-50"}, cols, "2026-08"); ok {
		t.Error("non-positive amount should be skipped")
	}
	if _, ok := rowToTransaction([]string{"Fees", "abc"}, cols, "2026-08"); ok {
		t.Error("unparseable amount should be skipped")
	}

	tx, ok = rowToTransaction([]string{"Salary", "45000", "income", "Other"}, cols, "2026-08")
	if !ok || tx.Type != "income" {
		t.Errorf("income row = %+v ok=%t", tx, ok)
	}
}

func TestToAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1200", 1200},
		{"₹1,200.50", 1200.50},
		{" 3,000 ", 3000},
		{"garbage", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := toAmount(tt.in); got != tt.want {
			t.Errorf("toAmount(%q) = %f, want %f", tt.in, got, tt.want)
		}
	}
}

func TestReadAllRows_UnsupportedExt(t *testing.T) {
	if _, err := readAllRows([]byte("x"), ".pdf"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestReadAllRows_LegacyXLS(t *testing.T) {
	// OLE magic bytes of a pre-2007 workbook; the reader cannot parse these.
	ole := []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
	_, err := readAllRows(ole, ".xls")
	if err == nil || !strings.Contains(err.Error(), ".xlsx") {
		t.Errorf("legacy .xls should be rejected with a re-save hint, got %v", err)
	}
}

func TestReadAllRows_CSVVariableColumns(t *testing.T) {
	csvData := strings.Join([]string{"a,b,c", "1,2", "x,y,z,w"}, "\n")
	rows, err := readAllRows([]byte(csvData), ".csv")
	if err != nil {
		t.Fatalf("variable-width csv should parse: %v", err)
	}
	if len(rows) != 3 {
		t.Errorf("rows = %d, want 3", len(rows))
	}
}
