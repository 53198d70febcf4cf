package client

import (
	"context"
	"strings"

	"github.com/turtacn/MacBench/pkg/types/machine"
)

// AdvisorClient asks the purchase advisor.
type AdvisorClient struct {
	client *Client
}

// Ask answers a free-form question over the rows selected by req.View.
// The server falls back to a local answer when its chat backend is down, so
// a nil error does not imply Source == "llm".
// POST /api/v1/advisor
func (ac *AdvisorClient) Ask(ctx context.Context, req *machine.AdvisorRequest) (*machine.AdvisorResponse, error) {
	if req == nil || strings.TrimSpace(req.Query) == "" {
		return nil, invalidArg("query is required")
	}
	var result machine.AdvisorResponse
	if err := ac.client.post(ctx, "/advisor", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

//Personal.AI order the ending
