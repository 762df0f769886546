package tickersymbols

import "slices"

// Dataset is the root of the stocks document.
type Dataset struct {
	Companies []Company `yaml:"companies" json:"companies"`
	Indices   []Index   `yaml:"indices" json:"indices"`
}

// Company is a single listed company and its index/industry memberships.
type Company struct {
	Name       string        `yaml:"name" json:"name,omitempty"`
	Symbol     string        `yaml:"symbol" json:"symbol,omitempty"`
	Country    string        `yaml:"country" json:"country"`
	Indices    []string      `yaml:"indices" json:"indices"`
	Industries []string      `yaml:"industries" json:"industries"`
	Symbols    []SymbolEntry `yaml:"symbols" json:"symbols"`
	ISINs      []string      `yaml:"isins" json:"isins,omitempty"`
	AKAs       []string      `yaml:"akas" json:"akas,omitempty"`
	Metadata   Metadata      `yaml:"metadata" json:"metadata"`
}

// clone returns a copy that shares no memory with c.
func (c Company) clone() Company {
	c.Indices = slices.Clone(c.Indices)
	c.Industries = slices.Clone(c.Industries)
	c.ISINs = slices.Clone(c.ISINs)
	c.AKAs = slices.Clone(c.AKAs)
	if c.Symbols != nil {
		syms := make([]SymbolEntry, len(c.Symbols))
		for i, s := range c.Symbols {
			syms[i] = s.clone()
		}
		c.Symbols = syms
	}
	return c
}

type Metadata struct {
	Founded   int `yaml:"founded" json:"founded,omitempty"`
	Employees int `yaml:"employees" json:"employees,omitempty"`
}

// SymbolEntry maps provider keys to ticker symbols. A nil field means the
// entry does not cover that provider; NoSymbol means the provider has no
// ticker for it.
type SymbolEntry struct {
	Yahoo    *string `yaml:"yahoo" json:"yahoo,omitempty"`
	Google   *string `yaml:"google" json:"google,omitempty"`
	Currency string  `yaml:"currency" json:"currency,omitempty"`
}

// NoSymbol is the placeholder used in the dataset for a missing ticker.
const NoSymbol = "-"

// Symbol returns the ticker for p, or false if the entry does not cover p
// or holds the NoSymbol placeholder.
func (s SymbolEntry) Symbol(p Provider) (string, bool) {
	var v *string
	switch p {
	case Yahoo:
		v = s.Yahoo
	case Google:
		v = s.Google
	}
	if v == nil || *v == NoSymbol {
		return "", false
	}
	return *v, true
}

func (s SymbolEntry) clone() SymbolEntry {
	s.Yahoo = clonePtr(s.Yahoo)
	s.Google = clonePtr(s.Google)
	return s
}

func clonePtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Index is a stock market index and the Yahoo symbol of the index itself.
type Index struct {
	Name  string `yaml:"name" json:"name"`
	Yahoo string `yaml:"yahoo" json:"yahoo"`
}
