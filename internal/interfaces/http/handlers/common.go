// Package handlers implements the MacBench HTTP API on gin.  Handlers parse
// and validate transport input, call the application services and map
// AppErrors to HTTP responses.
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/MacBench/internal/domain/machine"
	"github.com/turtacn/MacBench/internal/interfaces/http/middleware"
	"github.com/turtacn/MacBench/pkg/errors"
)

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Detail    string `json:"detail,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

// writeJSON writes data with the given status code.
func writeJSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// writeAppError maps err to its HTTP status.  Server errors are masked to
// the default message of their code; the full error goes to the gin error
// list for the access log.
func writeAppError(c *gin.Context, err error) {
	_ = c.Error(err)

	code := errors.GetCode(err)
	if code == errors.CodeUnknown || code == errors.CodeOK {
		code = errors.ErrCodeInternal
	}
	status := errors.HTTPStatusForCode(code)
	resp := ErrorResponse{Code: code.String(), RequestID: middleware.GetRequestID(c)}

	var ae *errors.AppError
	if status < http.StatusInternalServerError && errors.As(err, &ae) {
		resp.Message = ae.Message
		resp.Detail = ae.Detail
	} else {
		resp.Message = errors.DefaultMessageForCode(code)
	}
	c.AbortWithStatusJSON(status, resp)
}

// bindJSON decodes the request body into dest.  An empty body leaves dest
// untouched.
func bindJSON(c *gin.Context, dest interface{}) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(dest); err != nil {
		return errors.InvalidParam("invalid request body").WithDetail(err.Error())
	}
	return nil
}

// scenarioParam reads the scenario query parameter.  Missing or unknown
// values mean the default scenario.
func scenarioParam(c *gin.Context) machine.Scenario {
	s, ok := machine.ParseScenario(c.Query("scenario"))
	if !ok {
		return machine.DefaultScenario
	}
	return s
}

// splitList splits a comma separated parameter, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseFloatParam parses a required numeric query parameter.
func parseFloatParam(c *gin.Context, name string, code errors.ErrorCode) (float64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, errors.Newf(code, "%s is required", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Newf(code, "%s must be a number", name).WithDetail(raw)
	}
	return v, nil
}

//Personal.AI order the ending
