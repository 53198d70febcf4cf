package handlers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/MacBench/internal/application/catalog"
	"github.com/turtacn/MacBench/internal/domain/view"
	"github.com/turtacn/MacBench/pkg/errors"
)

// CatalogHandler serves the machine list, details, comparisons, scenarios
// and price estimates.
type CatalogHandler struct {
	svc catalog.Service
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalog.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// List handles GET /api/v1/machines.  The view state is read from the query
// string with the same parameters as shareable links.
func (h *CatalogHandler) List(c *gin.Context) {
	res, err := h.svc.List(c.Request.Context(), view.FromQuery(c.Request.URL.Query()))
	if err != nil {
		writeAppError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, res)
}

// Get handles GET /api/v1/machines/:id.
func (h *CatalogHandler) Get(c *gin.Context) {
	res, err := h.svc.Get(c.Request.Context(), c.Param("id"), scenarioParam(c))
	if err != nil {
		writeAppError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, res)
}

// Compare handles GET /api/v1/compare?ids=a,b.
func (h *CatalogHandler) Compare(c *gin.Context) {
	res, err := h.svc.Compare(c.Request.Context(), splitList(c.Query("ids")), scenarioParam(c))
	if err != nil {
		writeAppError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, res)
}

// Scenarios handles GET /api/v1/scenarios.
func (h *CatalogHandler) Scenarios(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"scenarios": h.svc.Scenarios()})
}

// Estimate handles GET /api/v1/estimates?price=&year=.
func (h *CatalogHandler) Estimate(c *gin.Context) {
	price, err := parseFloatParam(c, "price", errors.ErrCodeEstimateInputError)
	if err != nil {
		writeAppError(c, err)
		return
	}
	year, err := parseFloatParam(c, "year", errors.ErrCodeEstimateInputError)
	if err != nil {
		writeAppError(c, err)
		return
	}
	if year != math.Trunc(year) {
		writeAppError(c, errors.New(errors.ErrCodeEstimateInputError, "year must be an integer"))
		return
	}
	res, err := h.svc.Estimate(&catalog.EstimateRequest{Price: price, Year: int(year)})
	if err != nil {
		writeAppError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, res)
}

//Personal.AI order the ending
