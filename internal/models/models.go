package models

import "tickersymbols/pkg/tickersymbols"

type Summary struct {
	Companies     int       `json:"companies"`
	Indices       int       `json:"indices"`
	Industries    int       `json:"industries"`
	Countries     int       `json:"countries"`
	TopIndices    []TopItem `json:"top_indices"`
	TopIndustries []TopItem `json:"top_industries"`
	TopCountries  []TopItem `json:"top_countries"`
}

type TopItem struct {
	Name      string `json:"name"`
	Companies int    `json:"companies"`
}

type Page[T any] struct {
	Data   []T `json:"data"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type TickerList struct {
	Index    string     `json:"index"`
	Provider string     `json:"provider"`
	Symbols  [][]string `json:"symbols"`
}

type IndexSymbol struct {
	Index string `json:"index"`
	Yahoo string `json:"yahoo"`
}

type Health struct {
	Status    string `json:"status"`
	Dataset   string `json:"dataset"`
	Companies int    `json:"companies"`
}

// Company is the API view of a dataset company.
type Company = tickersymbols.Company
