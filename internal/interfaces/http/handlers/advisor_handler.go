package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/MacBench/internal/application/advisor"
	"github.com/turtacn/MacBench/internal/application/catalog"
	"github.com/turtacn/MacBench/internal/domain/view"
	"github.com/turtacn/MacBench/internal/i18n"
	"github.com/turtacn/MacBench/pkg/errors"
)

// Response formats of the advisor endpoint.
const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// AdvisorRequest is the body of POST /api/v1/advisor.
type AdvisorRequest struct {
	Query string `json:"query"`
	// Language falls back to Accept-Language, then the configured default.
	Language string `json:"language"`
	// View is the query string of the list the question is asked over.
	View   string `json:"view"`
	Format string `json:"format"`
}

// AdvisorResponse is the advice plus the size of the context it used.
type AdvisorResponse struct {
	*advisor.Response
	HTML string `json:"html,omitempty"`
	Rows int    `json:"rows"`
}

// AdvisorHandler answers buying questions over a filtered list.
type AdvisorHandler struct {
	catalog     catalog.Service
	advisor     advisor.Service
	defaultLang i18n.Lang
}

// NewAdvisorHandler creates an AdvisorHandler.
func NewAdvisorHandler(cat catalog.Service, adv advisor.Service, defaultLang i18n.Lang) *AdvisorHandler {
	if !defaultLang.IsValid() {
		defaultLang = i18n.DefaultLang
	}
	return &AdvisorHandler{catalog: cat, advisor: adv, defaultLang: defaultLang}
}

// Advise handles POST /api/v1/advisor.  ?format=html adds rendered HTML.
func (h *AdvisorHandler) Advise(c *gin.Context) {
	var req AdvisorRequest
	if err := bindJSON(c, &req); err != nil {
		writeAppError(c, err)
		return
	}
	format := strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", req.Format)))
	if format == "" {
		format = FormatMarkdown
	}
	if format != FormatMarkdown && format != FormatHTML {
		writeAppError(c, errors.InvalidParam("format must be markdown or html").WithDetail(format))
		return
	}

	list, err := h.catalog.List(c.Request.Context(), view.ParseQueryString(req.View))
	if err != nil {
		writeAppError(c, err)
		return
	}
	resp, err := h.advisor.Advise(c.Request.Context(), &advisor.Request{
		Query:    req.Query,
		Language: h.language(c, req.Language),
		Scenario: list.State.Scenario,
		Rows:     list.Rows,
	})
	if err != nil {
		writeAppError(c, err)
		return
	}

	out := AdvisorResponse{Response: resp, Rows: len(list.Rows)}
	if format == FormatHTML {
		html, err := advisor.RenderHTML(resp.Answer)
		if err != nil {
			writeAppError(c, errors.Wrap(err, errors.ErrCodeInternal, "render advice"))
			return
		}
		out.HTML = html
	}
	writeJSON(c, http.StatusOK, out)
}

func (h *AdvisorHandler) language(c *gin.Context, requested string) string {
	if requested = strings.TrimSpace(requested); requested != "" {
		return requested
	}
	if al := c.GetHeader("Accept-Language"); al != "" {
		return al
	}
	return string(h.defaultLang)
}

//Personal.AI order the ending
