// Package dataset loads the machine records served by MacBench.  The
// default records are compiled into the binary; an external .json or .yaml
// file may replace them.  Every source is checked against the embedded JSON
// Schema and then against the record invariants of the machine package.
package dataset

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/turtacn/MacBench/internal/domain/machine"
	"github.com/turtacn/MacBench/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MacBench/pkg/errors"
)

//go:embed data/machines.json
var embeddedJSON []byte

// Format is the encoding of a dataset source.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath infers the Format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.New(errors.ErrCodeDatasetUnsupported, "unsupported dataset format").WithDetail(path)
	}
}

// Embedded returns the records compiled into the binary.
func Embedded() ([]machine.Machine, error) {
	return Parse(embeddedJSON, FormatJSON)
}

// Load reads records from path, or the embedded records when path is empty.
func Load(path string) ([]machine.Machine, error) {
	if path == "" {
		return Embedded()
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatasetUnreadable, "dataset could not be read").WithDetail(path)
	}
	return Parse(data, format)
}

// Parse validates data against the record schema, decodes it and checks the
// record invariants.
func Parse(data []byte, format Format) ([]machine.Machine, error) {
	instance, err := decodeInstance(data, format)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatasetUnreadable, "dataset is not well-formed")
	}
	if problems := validateInstance(instance); len(problems) > 0 {
		return nil, errors.New(errors.ErrCodeDatasetInvalid, "dataset failed schema validation").
			WithDetail(strings.Join(problems, "; "))
	}

	var records []machine.Machine
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &records)
	case FormatYAML:
		err = yaml.Unmarshal(data, &records)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatasetUnreadable, "dataset could not be decoded")
	}
	if err := machine.ValidateAll(records); err != nil {
		return nil, err
	}
	return records, nil
}

// MustEmbedded panics when the embedded records are invalid.  Tests and the
// CLI use it where a broken build is the only failure mode.
func MustEmbedded() []machine.Machine {
	records, err := Embedded()
	if err != nil {
		panic(fmt.Sprintf("dataset: embedded records are invalid: %v", err))
	}
	return records
}

// LoadWithLogger is Load plus a summary log line.
func LoadWithLogger(path string, log logging.Logger) ([]machine.Machine, error) {
	records, err := Load(path)
	if err != nil {
		log.Error("dataset load failed", logging.String("path", path), logging.Err(err))
		return nil, err
	}
	refs := 0
	for _, m := range records {
		if m.IsReference {
			refs++
		}
	}
	source := path
	if source == "" {
		source = "embedded"
	}
	log.Info("dataset loaded",
		logging.String("source", source),
		logging.Int("records", len(records)),
		logging.Int("reference", refs),
	)
	return records, nil
}

//Personal.AI order the ending
