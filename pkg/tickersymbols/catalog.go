// Package tickersymbols answers lookups over a static dataset of stock
// market companies grouped by index, industry and country.
package tickersymbols

import (
	"slices"
	"time"

	"github.com/rs/zerolog"
)

// Catalog holds a loaded Dataset. It is never modified after New returns,
// so its methods are safe for concurrent use. Companies handed out are deep
// copies; changing them does not affect the catalog.
type Catalog struct {
	path string
	ds   *Dataset
}

type options struct {
	path   string
	logger zerolog.Logger
}

type Option func(*options)

// WithPath loads the dataset from path instead of the embedded copy.
func WithPath(path string) Option {
	return func(o *options) { o.path = path }
}

func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New loads the dataset and returns a ready Catalog. Any failure is
// returned as a *LoadError and no Catalog is produced.
func New(opts ...Option) (*Catalog, error) {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	path := o.path
	var (
		ds  *Dataset
		err error
	)
	if path == "" {
		path = DefaultPath
		ds, err = LoadBundled()
	} else {
		ds, err = Load(path)
	}
	if err != nil {
		o.logger.Error().Err(err).Str("path", path).Msg("dataset load failed")
		return nil, err
	}

	o.logger.Debug().
		Str("path", path).
		Int("companies", len(ds.Companies)).
		Int("indices", len(ds.Indices)).
		Dur("took", time.Since(start)).
		Msg("dataset loaded")
	return &Catalog{path: path, ds: ds}, nil
}

// NewFromDataset wraps an already decoded dataset. The caller must not
// modify ds afterwards.
func NewFromDataset(ds *Dataset) *Catalog {
	if ds == nil {
		ds = &Dataset{}
	}
	return &Catalog{path: "memory", ds: ds}
}

// Path is the resource the dataset was loaded from.
func (c *Catalog) Path() string { return c.path }

// Companies returns a copy of every company in dataset order.
func (c *Catalog) Companies() []Company {
	return c.filter(func(*Company) bool { return true })
}

// IndexRecords returns the index records in dataset order.
func (c *Catalog) IndexRecords() []Index {
	return slices.Clone(c.ds.Indices)
}

// Indices returns the distinct index names referenced by any company.
func (c *Catalog) Indices() []string {
	return c.distinct(func(co *Company) []string { return co.Indices })
}

// Industries returns the distinct industries referenced by any company.
func (c *Catalog) Industries() []string {
	return c.distinct(func(co *Company) []string { return co.Industries })
}

// Countries returns the distinct country values. Values that differ only
// in case are reported separately.
func (c *Catalog) Countries() []string {
	return c.distinct(func(co *Company) []string { return []string{co.Country} })
}

// CompaniesByIndex returns the companies listed in the named index,
// compared without regard to case.
func (c *Catalog) CompaniesByIndex(name string) []Company {
	return c.filter(func(co *Company) bool { return containsFold(co.Indices, name) })
}

func (c *Catalog) CompaniesByIndustry(name string) []Company {
	return c.filter(func(co *Company) bool { return containsFold(co.Industries, name) })
}

func (c *Catalog) CompaniesByCountry(name string) []Company {
	return c.filter(func(co *Company) bool { return equalFold(co.Country, name) })
}

// TickerSymbolsByIndex returns, for each company of the index, the tickers
// its symbol entries carry for p. Companies without a usable ticker get an
// empty slice so the result lines up with CompaniesByIndex.
func (c *Catalog) TickerSymbolsByIndex(name string, p Provider) [][]string {
	companies := c.CompaniesByIndex(name)
	out := make([][]string, 0, len(companies))
	for _, co := range companies {
		syms := []string{}
		for _, entry := range co.Symbols {
			if s, ok := entry.Symbol(p); ok {
				syms = append(syms, s)
			}
		}
		out = append(out, syms)
	}
	return out
}

func (c *Catalog) YahooTickerSymbolsByIndex(name string) [][]string {
	return c.TickerSymbolsByIndex(name, Yahoo)
}

func (c *Catalog) GoogleTickerSymbolsByIndex(name string) [][]string {
	return c.TickerSymbolsByIndex(name, Google)
}

// IndexYahooSymbol returns the Yahoo symbol of the first index record whose
// name is exactly indexName. Unlike the company filters this match is case
// sensitive.
func (c *Catalog) IndexYahooSymbol(indexName string) (string, bool) {
	for _, idx := range c.ds.Indices {
		if idx.Name == indexName {
			return idx.Yahoo, true
		}
	}
	return "", false
}

func (c *Catalog) filter(match func(*Company) bool) []Company {
	out := []Company{}
	for i := range c.ds.Companies {
		if match(&c.ds.Companies[i]) {
			out = append(out, c.ds.Companies[i].clone())
		}
	}
	return out
}

func (c *Catalog) distinct(values func(*Company) []string) []string {
	seen := make(map[string]struct{})
	for i := range c.ds.Companies {
		for _, v := range values(&c.ds.Companies[i]) {
			seen[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

func containsFold(items []string, name string) bool {
	for _, item := range items {
		if equalFold(item, name) {
			return true
		}
	}
	return false
}
