package api

import (
	"bytes"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"tickersymbols/internal/engine"
	"tickersymbols/internal/models"
	"tickersymbols/pkg/tickersymbols"
)

const arrowStreamType = "application/vnd.apache.arrow.stream"

type Handler struct {
	catalog *tickersymbols.Catalog
	columns *engine.ColumnStore
}

func NewHandler(catalog *tickersymbols.Catalog) *Handler {
	return &Handler{catalog: catalog, columns: engine.NewColumnStore(nil)}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)

	api := e.Group("/api")
	api.GET("/indices", h.ListIndices)
	api.GET("/industries", h.ListIndustries)
	api.GET("/countries", h.ListCountries)
	api.GET("/indices/:name/companies", h.CompaniesByIndex)
	api.GET("/industries/:name/companies", h.CompaniesByIndustry)
	api.GET("/countries/:name/companies", h.CompaniesByCountry)
	api.GET("/indices/:name/tickers", h.TickerSymbolsByIndex)
	api.GET("/indices/:name/yahoo", h.IndexYahooSymbol)
	api.GET("/summary", h.Summary)
	api.GET("/export/companies.arrow", h.ExportCompanies)
}

// --- HANDLERS ---
func getPaginationParams(c echo.Context, defaultLimit int) (int, int) {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	offset, err := strconv.Atoi(c.QueryParam("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

func paginate[T any](c echo.Context, items []T) error {
	total := len(items)
	limit, offset := getPaginationParams(c, total)

	page := models.Page[T]{Data: []T{}, Total: total, Limit: limit, Offset: offset}
	if offset < total {
		end := total
		if limit < total-offset {
			end = offset + limit
		}
		page.Data = items[offset:end]
	}
	return c.JSON(http.StatusOK, page)
}

// nameParam returns the decoded :name path segment. The router matches on
// RawPath when the request has one, leaving params escaped; otherwise they
// come from the already decoded Path.
func nameParam(c echo.Context) string {
	raw := c.Param("name")
	if c.Request().URL.RawPath == "" {
		return raw
	}
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, models.Health{
		Status:    "ok",
		Dataset:   h.catalog.Path(),
		Companies: len(h.catalog.Companies()),
	})
}

func (h *Handler) ListIndices(c echo.Context) error {
	return paginate(c, h.catalog.Indices())
}

func (h *Handler) ListIndustries(c echo.Context) error {
	return paginate(c, h.catalog.Industries())
}

func (h *Handler) ListCountries(c echo.Context) error {
	return paginate(c, h.catalog.Countries())
}

func (h *Handler) CompaniesByIndex(c echo.Context) error {
	return paginate(c, h.catalog.CompaniesByIndex(nameParam(c)))
}

func (h *Handler) CompaniesByIndustry(c echo.Context) error {
	return paginate(c, h.catalog.CompaniesByIndustry(nameParam(c)))
}

func (h *Handler) CompaniesByCountry(c echo.Context) error {
	return paginate(c, h.catalog.CompaniesByCountry(nameParam(c)))
}

// TickerSymbolsByIndex defaults to the yahoo provider.
func (h *Handler) TickerSymbolsByIndex(c echo.Context) error {
	provider := tickersymbols.Yahoo
	if p := c.QueryParam("provider"); p != "" {
		var err error
		if provider, err = tickersymbols.ParseProvider(p); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	name := nameParam(c)
	return c.JSON(http.StatusOK, models.TickerList{
		Index:    name,
		Provider: provider.String(),
		Symbols:  h.catalog.TickerSymbolsByIndex(name, provider),
	})
}

func (h *Handler) IndexYahooSymbol(c echo.Context) error {
	name := nameParam(c)
	sym, ok := h.catalog.IndexYahooSymbol(name)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown index "+strconv.Quote(name))
	}
	return c.JSON(http.StatusOK, models.IndexSymbol{Index: name, Yahoo: sym})
}

func (h *Handler) Summary(c echo.Context) error {
	top, err := strconv.Atoi(c.QueryParam("top"))
	if err != nil || top < 0 {
		top = 10
	}
	return c.JSON(http.StatusOK, engine.Summarize(h.catalog, top))
}

func (h *Handler) ExportCompanies(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.columns.WriteIPC(&buf, h.catalog.Companies()); err != nil {
		return err
	}
	return c.Blob(http.StatusOK, arrowStreamType, buf.Bytes())
}
