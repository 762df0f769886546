package engine

import "tickersymbols/pkg/tickersymbols"

func sym(s string) *string { return &s }

// testCatalog:
// Row 0: Alpha, Germany, DAX + EURO STOXX 50, Software
// Row 1: Beta,  Germany, DAX,                 Chemicals
// Row 2: Gamma, France,  CAC 40,              Software (listed twice)
func testCatalog() *tickersymbols.Catalog {
	return tickersymbols.NewFromDataset(&tickersymbols.Dataset{
		Companies: []tickersymbols.Company{
			{
				Name:       "Alpha",
				Symbol:     "ALP",
				Country:    "Germany",
				Indices:    []string{"DAX", "EURO STOXX 50"},
				Industries: []string{"Software"},
				Symbols: []tickersymbols.SymbolEntry{
					{Yahoo: sym("ALP.DE"), Google: sym("FRA:ALP")},
					{Yahoo: sym("ALPQY"), Google: sym("-")},
				},
				Metadata: tickersymbols.Metadata{Founded: 1972, Employees: 1000},
			},
			{
				Name:       "Beta",
				Country:    "Germany",
				Indices:    []string{"DAX"},
				Industries: []string{"Chemicals"},
				Symbols:    []tickersymbols.SymbolEntry{{Google: sym("FRA:BET")}},
			},
			{
				Name:       "Gamma",
				Country:    "France",
				Indices:    []string{"CAC 40"},
				Industries: []string{"Software", "Software"},
			},
		},
		Indices: []tickersymbols.Index{{Name: "DAX", Yahoo: "^GDAXI"}},
	})
}
