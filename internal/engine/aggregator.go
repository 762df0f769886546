package engine

import (
	"sort"

	"tickersymbols/internal/models"
	"tickersymbols/pkg/tickersymbols"
)

// Summarize counts companies per index, industry and country and keeps the
// top entries of each, largest first. top <= 0 keeps everything.
func Summarize(c *tickersymbols.Catalog, top int) *models.Summary {
	companies := c.Companies()

	// Exact-value counts; a company listing the same name twice counts once.
	idxCount := make(map[string]int)
	indCount := make(map[string]int)
	ctryCount := make(map[string]int)

	for _, co := range companies {
		for name := range distinct(co.Indices) {
			idxCount[name]++
		}
		for name := range distinct(co.Industries) {
			indCount[name]++
		}
		ctryCount[co.Country]++
	}

	return &models.Summary{
		Companies:     len(companies),
		Indices:       len(idxCount),
		Industries:    len(indCount),
		Countries:     len(ctryCount),
		TopIndices:    topItems(idxCount, top),
		TopIndustries: topItems(indCount, top),
		TopCountries:  topItems(ctryCount, top),
	}
}

func distinct(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, s := range items {
		set[s] = struct{}{}
	}
	return set
}

func topItems(counts map[string]int, top int) []models.TopItem {
	items := make([]models.TopItem, 0, len(counts))
	for name, n := range counts {
		items = append(items, models.TopItem{Name: name, Companies: n})
	}
	// Ties broken by name so output is stable.
	sort.Slice(items, func(i, j int) bool {
		if items[i].Companies != items[j].Companies {
			return items[i].Companies > items[j].Companies
		}
		return items[i].Name < items[j].Name
	})
	if top > 0 && len(items) > top {
		items = items[:top]
	}
	return items
}
