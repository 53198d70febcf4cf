package client

import (
	"context"
	"net/url"
	"strings"

	"github.com/turtacn/MacBench/pkg/types/machine"
)

// PreferencesClient reads and writes per-client UI preferences.
type PreferencesClient struct {
	client *Client
}

// Get returns the preferences stored for clientID, or the defaults.
// GET /api/v1/preferences/{clientID}
func (pc *PreferencesClient) Get(ctx context.Context, clientID string) (*machine.PreferencesResult, error) {
	if strings.TrimSpace(clientID) == "" {
		return nil, invalidArg("clientID is required")
	}
	var result machine.PreferencesResult
	if err := pc.client.get(ctx, "/preferences/"+url.PathEscape(clientID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Create stores upd under a server-assigned client id.
// POST /api/v1/preferences
func (pc *PreferencesClient) Create(ctx context.Context, upd machine.PreferencesUpdate) (*machine.PreferencesResult, error) {
	var result machine.PreferencesResult
	if err := pc.client.post(ctx, "/preferences", upd, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Set merges upd into the preferences of clientID.
// PUT /api/v1/preferences/{clientID}
func (pc *PreferencesClient) Set(ctx context.Context, clientID string, upd machine.PreferencesUpdate) (*machine.PreferencesResult, error) {
	if strings.TrimSpace(clientID) == "" {
		return nil, invalidArg("clientID is required")
	}
	var result machine.PreferencesResult
	if err := pc.client.put(ctx, "/preferences/"+url.PathEscape(clientID), upd, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

//Personal.AI order the ending
