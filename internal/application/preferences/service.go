// Package preferences keeps per-client display settings: the interface
// language and the colour theme.  Values are stored as JSON strings under
// the client id, either in Redis or in process memory.
package preferences

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/turtacn/MacBench/internal/i18n"
	"github.com/turtacn/MacBench/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MacBench/pkg/errors"
)

// Theme is the colour scheme of a client.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// IsValid reports whether t is a known theme.
func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// Preferences are the settings of one client.
type Preferences struct {
	Language i18n.Lang `json:"language"`
	Theme    Theme     `json:"theme"`
}

// Defaults returns English with the system theme.
func Defaults() Preferences {
	return Preferences{Language: i18n.DefaultLang, Theme: ThemeSystem}
}

// Validate checks both fields.
func (p Preferences) Validate() error {
	if !p.Language.IsValid() {
		return errors.Newf(errors.ErrCodePreferenceInvalid, "unsupported language %q", p.Language)
	}
	if !p.Theme.IsValid() {
		return errors.Newf(errors.ErrCodePreferenceInvalid, "unsupported theme %q", p.Theme)
	}
	return nil
}

// Store persists raw values by key.  A missing key reads as ("", false, nil).
// The Redis KVStore satisfies it.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// MemoryStore is a Store kept in process memory.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	s.data[key] = value
	s.mu.Unlock()
	return nil
}

// Update changes a subset of the preferences.  Empty fields keep the
// current value.
type Update struct {
	Language string `json:"language"`
	Theme    string `json:"theme"`
}

// Result pairs preferences with the client they belong to.
type Result struct {
	ClientID    string      `json:"clientId"`
	Preferences Preferences `json:"preferences"`
	// Stored is false when the defaults were returned.
	Stored bool `json:"stored"`
}

// Service reads and writes client preferences.
type Service interface {
	Get(ctx context.Context, clientID string) (*Result, error)
	// Set applies upd.  An empty clientID is replaced by a new UUID.
	Set(ctx context.Context, clientID string, upd Update) (*Result, error)
}

type serviceImpl struct {
	store  Store
	logger logging.Logger
}

// NewService returns a Service over store.  A nil store means memory.
func NewService(store Store, logger logging.Logger) Service {
	if store == nil {
		store = NewMemoryStore()
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &serviceImpl{store: store, logger: logger.Named("preferences")}
}

func (s *serviceImpl) Get(ctx context.Context, clientID string) (*Result, error) {
	id, err := parseClientID(clientID)
	if err != nil {
		return nil, err
	}
	prefs, stored, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Result{ClientID: id, Preferences: prefs, Stored: stored}, nil
}

func (s *serviceImpl) Set(ctx context.Context, clientID string, upd Update) (*Result, error) {
	id := strings.TrimSpace(clientID)
	if id == "" {
		id = uuid.NewString()
	} else {
		var err error
		if id, err = parseClientID(id); err != nil {
			return nil, err
		}
	}

	prefs, _, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Language != "" {
		prefs.Language = i18n.Lang(strings.ToLower(strings.TrimSpace(upd.Language)))
	}
	if upd.Theme != "" {
		prefs.Theme = Theme(strings.ToLower(strings.TrimSpace(upd.Theme)))
	}
	if err := prefs.Validate(); err != nil {
		return nil, err
	}

	data, err := json.Marshal(prefs)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSerialization, "encode preferences")
	}
	if err := s.store.Set(ctx, id, string(data)); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodePreferenceStore, "save preferences")
	}
	s.logger.Debug("preferences saved",
		logging.String("client_id", id),
		logging.String("language", string(prefs.Language)),
		logging.String("theme", string(prefs.Theme)),
	)
	return &Result{ClientID: id, Preferences: prefs, Stored: true}, nil
}

// load returns the stored preferences or the defaults.  Unreadable or
// invalid stored values read as the defaults.
func (s *serviceImpl) load(ctx context.Context, id string) (Preferences, bool, error) {
	raw, ok, err := s.store.Get(ctx, id)
	if err != nil {
		return Preferences{}, false, errors.Wrap(err, errors.ErrCodePreferenceStore, "load preferences")
	}
	if !ok {
		return Defaults(), false, nil
	}
	var prefs Preferences
	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		s.logger.Warn("stored preferences unreadable, using defaults", logging.String("client_id", id), logging.Err(err))
		return Defaults(), false, nil
	}
	def := Defaults()
	if !prefs.Language.IsValid() {
		prefs.Language = def.Language
	}
	if !prefs.Theme.IsValid() {
		prefs.Theme = def.Theme
	}
	return prefs, true, nil
}

func parseClientID(clientID string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(clientID))
	if err != nil {
		return "", errors.Newf(errors.ErrCodePreferenceInvalid, "client id %q is not a UUID", clientID)
	}
	return id.String(), nil
}

//Personal.AI order the ending
