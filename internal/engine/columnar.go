package engine

import (
	"fmt"
	"io"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/ipc"
	"github.com/apache/arrow/go/v18/arrow/memory"

	"tickersymbols/pkg/tickersymbols"
)

// CompanySchema is the column layout of the company export, one row per
// company in dataset order.
var CompanySchema = arrow.NewSchema([]arrow.Field{
	{Name: "name", Type: arrow.BinaryTypes.String},
	{Name: "symbol", Type: arrow.BinaryTypes.String},
	{Name: "country", Type: arrow.BinaryTypes.String},
	{Name: "indices", Type: arrow.ListOf(arrow.BinaryTypes.String)},
	{Name: "industries", Type: arrow.ListOf(arrow.BinaryTypes.String)},
	{Name: "yahoo", Type: arrow.ListOf(arrow.BinaryTypes.String)},
	{Name: "google", Type: arrow.ListOf(arrow.BinaryTypes.String)},
	{Name: "founded", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
	{Name: "employees", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
}, nil)

// ColumnStore builds struct-of-arrays records of the catalog's companies.
type ColumnStore struct {
	mem memory.Allocator
}

func NewColumnStore(mem memory.Allocator) *ColumnStore {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	return &ColumnStore{mem: mem}
}

// Build returns a record with one row per company. The caller releases it.
func (s *ColumnStore) Build(companies []tickersymbols.Company) arrow.Record {
	b := array.NewRecordBuilder(s.mem, CompanySchema)
	defer b.Release()

	names := b.Field(0).(*array.StringBuilder)
	symbols := b.Field(1).(*array.StringBuilder)
	countries := b.Field(2).(*array.StringBuilder)
	indices := b.Field(3).(*array.ListBuilder)
	industries := b.Field(4).(*array.ListBuilder)
	yahoo := b.Field(5).(*array.ListBuilder)
	google := b.Field(6).(*array.ListBuilder)
	founded := b.Field(7).(*array.Int64Builder)
	employees := b.Field(8).(*array.Int64Builder)

	for _, co := range companies {
		names.Append(co.Name)
		symbols.Append(co.Symbol)
		countries.Append(co.Country)
		appendList(indices, co.Indices)
		appendList(industries, co.Industries)
		appendList(yahoo, providerSymbols(co, tickersymbols.Yahoo))
		appendList(google, providerSymbols(co, tickersymbols.Google))

		if co.Metadata.Founded != 0 {
			founded.Append(int64(co.Metadata.Founded))
		} else {
			founded.AppendNull()
		}
		if co.Metadata.Employees != 0 {
			employees.Append(int64(co.Metadata.Employees))
		} else {
			employees.AppendNull()
		}
	}

	return b.NewRecord()
}

// WriteIPC writes the companies as a single-record Arrow IPC stream.
func (s *ColumnStore) WriteIPC(w io.Writer, companies []tickersymbols.Company) error {
	rec := s.Build(companies)
	defer rec.Release()

	wr := ipc.NewWriter(w, ipc.WithSchema(CompanySchema), ipc.WithAllocator(s.mem))
	if err := wr.Write(rec); err != nil {
		wr.Close()
		return fmt.Errorf("write arrow record: %w", err)
	}
	if err := wr.Close(); err != nil {
		return fmt.Errorf("close arrow stream: %w", err)
	}
	return nil
}

func appendList(lb *array.ListBuilder, items []string) {
	vb := lb.ValueBuilder().(*array.StringBuilder)
	lb.Append(true)
	for _, s := range items {
		vb.Append(s)
	}
}

func providerSymbols(co tickersymbols.Company, p tickersymbols.Provider) []string {
	var out []string
	for _, entry := range co.Symbols {
		if s, ok := entry.Symbol(p); ok {
			out = append(out, s)
		}
	}
	return out
}
