package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/MacBench/internal/application/preferences"
)

// PreferencesHandler reads and writes client preferences.
type PreferencesHandler struct {
	svc preferences.Service
}

// NewPreferencesHandler creates a PreferencesHandler.
func NewPreferencesHandler(svc preferences.Service) *PreferencesHandler {
	return &PreferencesHandler{svc: svc}
}

// Get handles GET /api/v1/preferences/:clientID.
func (h *PreferencesHandler) Get(c *gin.Context) {
	res, err := h.svc.Get(c.Request.Context(), c.Param("clientID"))
	if err != nil {
		writeAppError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, res)
}

// Put handles PUT /api/v1/preferences/:clientID.
func (h *PreferencesHandler) Put(c *gin.Context) {
	h.save(c, c.Param("clientID"), http.StatusOK)
}

// Create handles POST /api/v1/preferences, assigning a new client id.
func (h *PreferencesHandler) Create(c *gin.Context) {
	h.save(c, "", http.StatusCreated)
}

func (h *PreferencesHandler) save(c *gin.Context, clientID string, status int) {
	var upd preferences.Update
	if err := bindJSON(c, &upd); err != nil {
		writeAppError(c, err)
		return
	}
	res, err := h.svc.Set(c.Request.Context(), clientID, upd)
	if err != nil {
		writeAppError(c, err)
		return
	}
	writeJSON(c, status, res)
}

//Personal.AI order the ending
