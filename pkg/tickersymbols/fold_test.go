package tickersymbols

import "testing"

func TestEqualFold(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"DAX", "dax", true},
		{"Euro Stoxx 50", "EURO STOXX 50", true},
		{"Straße", "STRASSE", true},
		{"Österreich", "ÖSTERREICH", true},
		{"DAX", "MDAX", false},
		{"", "", true},
	}
	for _, tt := range tests {
		if got := equalFold(tt.a, tt.b); got != tt.want {
			t.Errorf("equalFold(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCountryFilterUsesFullFolding(t *testing.T) {
	c := NewFromDataset(&Dataset{Companies: []Company{{Name: "Bank", Country: "Straße"}}})
	if got := c.CompaniesByCountry("STRASSE"); len(got) != 1 {
		t.Errorf("CompaniesByCountry(STRASSE) returned %d companies, want 1", len(got))
	}
	// Listing keeps the stored value untouched.
	if got := c.Countries(); len(got) != 1 || got[0] != "Straße" {
		t.Errorf("Countries() = %v", got)
	}
}
