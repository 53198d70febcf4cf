package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/MacBench/internal/domain/view"
)

// ViewRequest applies one action to the view encoded by Query.
type ViewRequest struct {
	// Query is the current view as a query string; empty means the default.
	Query  string      `json:"query"`
	Action view.Action `json:"action"`
}

// ViewResponse is the view after the action.
type ViewResponse struct {
	State view.State `json:"state"`
	Query string     `json:"query"`
	Link  string     `json:"link"`
	// CanCompare is true once two machines are selected.
	CanCompare bool `json:"canCompare"`
}

// ViewHandler serves view-state transitions so thin clients share the
// sort and compare rules.
type ViewHandler struct {
	linkBase string
}

// NewViewHandler creates a ViewHandler.  linkBase prefixes generated links.
func NewViewHandler(linkBase string) *ViewHandler {
	if linkBase == "" {
		linkBase = "/"
	}
	return &ViewHandler{linkBase: linkBase}
}

// Apply handles POST /api/v1/view.
func (h *ViewHandler) Apply(c *gin.Context) {
	var req ViewRequest
	if err := bindJSON(c, &req); err != nil {
		writeAppError(c, err)
		return
	}
	state, err := view.Apply(view.ParseQueryString(req.Query), req.Action)
	if err != nil {
		writeAppError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, ViewResponse{
		State:      state,
		Query:      state.QueryString(),
		Link:       state.Link(h.linkBase),
		CanCompare: state.Compare.CanOpen(),
	})
}

//Personal.AI order the ending
