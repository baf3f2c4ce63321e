package discover

import (
	"strings"
	"testing"

	"github.com/thetascott/AWS-Data-Warehouse/internal/infer"
)

// TestColumns verifies per-column first-non-blank classification over a
// sampled extract.
func TestColumns(t *testing.T) {
	t.Parallel()

	data := []byte("cst_id, cst_key ,cst_create_date,cst_cost,notes\n" +
		"1,AW00011000,2025-10-06,13.99,\n" +
		"2,AW00011001,2025-10-07,14.50,hello\n")

	cols, err := Columns(data, 10)
	if err != nil {
		t.Fatalf("Columns: %v", err)
	}

	want := []ColumnSchema{
		{Name: "cst_id", Type: infer.TypeInt},
		{Name: "cst_key", Type: infer.TypeString},
		{Name: "cst_create_date", Type: infer.TypeDate},
		{Name: "cst_cost", Type: infer.TypeDouble},
		{Name: "notes", Type: infer.TypeString},
	}
	if len(cols) != len(want) {
		t.Fatalf("got %d columns, want %d: %v", len(cols), len(want), cols)
	}
	for i := range want {
		if cols[i] != want[i] {
			t.Fatalf("cols[%d] = %+v, want %+v", i, cols[i], want[i])
		}
	}
}

// TestColumnsAllBlank verifies the string default for all-blank columns.
func TestColumnsAllBlank(t *testing.T) {
	t.Parallel()

	data := []byte("a,b\n,1\n  ,2\n")
	cols, err := Columns(data, 10)
	if err != nil {
		t.Fatalf("Columns: %v", err)
	}
	if cols[0].Type != infer.TypeString {
		t.Fatalf("all-blank column type = %q, want string", cols[0].Type)
	}
	if cols[1].Type != infer.TypeInt {
		t.Fatalf("int column type = %q, want int", cols[1].Type)
	}
}

// TestColumnsEmptyFile verifies the sampling-error contract: no header means
// zero columns and no error.
func TestColumnsEmptyFile(t *testing.T) {
	t.Parallel()

	cols, err := Columns(nil, 10)
	if err != nil {
		t.Fatalf("Columns(nil): %v", err)
	}
	if len(cols) != 0 {
		t.Fatalf("got %d columns from empty file, want 0", len(cols))
	}
}

// TestColumnsSampleBound verifies that classification is a prefix projection:
// a value past the sampling cap cannot influence the type.
func TestColumnsSampleBound(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	b.WriteString("v\n")
	for i := 0; i < 5; i++ {
		b.WriteString("123\n")
	}
	b.WriteString("not-a-number\n")

	cols, err := Columns([]byte(b.String()), 5)
	if err != nil {
		t.Fatalf("Columns: %v", err)
	}
	if cols[0].Type != infer.TypeInt {
		t.Fatalf("type = %q, want int (atypical row beyond cap must not be read)", cols[0].Type)
	}
}
