package engine

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/ipc"
	"github.com/apache/arrow/go/v18/arrow/memory"

	"tickersymbols/pkg/tickersymbols"
)

func listAt(col *array.List, row int) []string {
	values := col.ListValues().(*array.String)
	start, end := col.ValueOffsets(row)
	out := []string{}
	for i := start; i < end; i++ {
		out = append(out, values.Value(int(i)))
	}
	return out
}

func TestColumnStoreBuild(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	store := NewColumnStore(mem)
	rec := store.Build(testCatalog().Companies())
	defer rec.Release()

	if rec.NumRows() != 3 {
		t.Fatalf("Expected 3 rows, got %d", rec.NumRows())
	}
	if rec.NumCols() != int64(len(CompanySchema.Fields())) {
		t.Fatalf("Expected %d columns, got %d", len(CompanySchema.Fields()), rec.NumCols())
	}

	names := rec.Column(0).(*array.String)
	if names.Value(0) != "Alpha" || names.Value(2) != "Gamma" {
		t.Errorf("Unexpected names: %s, %s", names.Value(0), names.Value(2))
	}

	// Placeholders and missing provider keys never reach the symbol columns.
	yahoo := rec.Column(5).(*array.List)
	google := rec.Column(6).(*array.List)
	if got := listAt(yahoo, 0); !reflect.DeepEqual(got, []string{"ALP.DE", "ALPQY"}) {
		t.Errorf("Row 0 yahoo = %v", got)
	}
	if got := listAt(google, 0); !reflect.DeepEqual(got, []string{"FRA:ALP"}) {
		t.Errorf("Row 0 google = %v", got)
	}
	if got := listAt(yahoo, 1); len(got) != 0 {
		t.Errorf("Row 1 yahoo expected empty, got %v", got)
	}

	founded := rec.Column(7).(*array.Int64)
	if founded.Value(0) != 1972 {
		t.Errorf("Row 0 founded = %d", founded.Value(0))
	}
	if !founded.IsNull(1) {
		t.Error("Row 1 founded expected null")
	}
}

func TestColumnStoreWriteIPC(t *testing.T) {
	store := NewColumnStore(nil)

	var buf bytes.Buffer
	if err := store.WriteIPC(&buf, testCatalog().Companies()); err != nil {
		t.Fatal(err)
	}

	r, err := ipc.NewReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Release()

	if !r.Schema().Equal(CompanySchema) {
		t.Errorf("Schema mismatch: %s", r.Schema())
	}
	rows := int64(0)
	for r.Next() {
		rec := r.Record()
		rows += rec.NumRows()
		indices := rec.Column(3).(*array.List)
		if got := listAt(indices, 0); !reflect.DeepEqual(got, []string{"DAX", "EURO STOXX 50"}) {
			t.Errorf("Row 0 indices = %v", got)
		}
	}
	if err := r.Err(); err != nil {
		t.Fatal(err)
	}
	if rows != 3 {
		t.Errorf("Expected 3 rows, got %d", rows)
	}
}

func TestColumnStoreMetadataColumnsAreInt64(t *testing.T) {
	for _, name := range []string{"founded", "employees"} {
		idx := CompanySchema.FieldIndices(name)
		if len(idx) != 1 || CompanySchema.Field(idx[0]).Type.ID() != arrow.INT64 {
			t.Errorf("%s column is not int64", name)
		}
	}

	store := NewColumnStore(nil)
	rec := store.Build([]tickersymbols.Company{
		{Name: "Big", Metadata: tickersymbols.Metadata{Founded: 1 << 40, Employees: 1 << 41}},
	})
	defer rec.Release()

	if got := rec.Column(7).(*array.Int64).Value(0); got != 1<<40 {
		t.Errorf("founded = %d, want %d", got, int64(1)<<40)
	}
	if got := rec.Column(8).(*array.Int64).Value(0); got != 1<<41 {
		t.Errorf("employees = %d, want %d", got, int64(1)<<41)
	}
}
