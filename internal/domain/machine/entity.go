// Package machine models a benchmarked Apple machine (or a non-Apple
// reference part) and the pure functions that derive scores, tiers, value
// ratios and price estimates from it.
package machine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/turtacn/MacBench/pkg/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Enumerations
// ─────────────────────────────────────────────────────────────────────────────

// DeviceType is the device category of a record.
type DeviceType string

const (
	TypeLaptop       DeviceType = "laptop"
	TypeDesktop      DeviceType = "desktop"
	TypeTablet       DeviceType = "tablet"
	TypeReferenceCPU DeviceType = "reference-cpu"
	TypeReferenceGPU DeviceType = "reference-gpu"
)

// DeviceTypes lists every DeviceType in display order.
var DeviceTypes = []DeviceType{TypeLaptop, TypeDesktop, TypeTablet, TypeReferenceCPU, TypeReferenceGPU}

// IsValid reports whether t is a known DeviceType.
func (t DeviceType) IsValid() bool {
	for _, known := range DeviceTypes {
		if t == known {
			return true
		}
	}
	return false
}

// IsReference reports whether t describes reference hardware.
func (t DeviceType) IsReference() bool {
	return t == TypeReferenceCPU || t == TypeReferenceGPU
}

// ChipFamily groups chips by generation.
type ChipFamily string

const (
	FamilyM1        ChipFamily = "M1"
	FamilyM2        ChipFamily = "M2"
	FamilyM3        ChipFamily = "M3"
	FamilyM4        ChipFamily = "M4"
	FamilyM5        ChipFamily = "M5"
	FamilyIntel     ChipFamily = "Intel"
	FamilyReference ChipFamily = "Reference"
)

// ChipFamilies lists every ChipFamily in display order.
var ChipFamilies = []ChipFamily{FamilyM1, FamilyM2, FamilyM3, FamilyM4, FamilyM5, FamilyIntel, FamilyReference}

// IsValid reports whether f is a known ChipFamily.
func (f ChipFamily) IsValid() bool {
	for _, known := range ChipFamilies {
		if f == known {
			return true
		}
	}
	return false
}

// Operating systems shipped on Apple records.  Reference parts carry "".
const (
	OSMacOS  = "macOS"
	OSiPadOS = "iPadOS"
)

// OperatingSystems lists the OS filter values.
var OperatingSystems = []string{OSMacOS, OSiPadOS}

// ─────────────────────────────────────────────────────────────────────────────
// Machine
// ─────────────────────────────────────────────────────────────────────────────

// Machine is one immutable dataset record.  Derived values are never stored
// on it; see TierScore, ValueScore and Breakdown.
type Machine struct {
	ID           string     `json:"id" yaml:"id"`
	Name         string     `json:"name" yaml:"name"`
	Type         DeviceType `json:"type" yaml:"type"`
	Chip         string     `json:"chip" yaml:"chip"`
	Family       ChipFamily `json:"family" yaml:"family"`
	OS           string     `json:"os,omitempty" yaml:"os,omitempty"`
	CPUCores     string     `json:"cpuCores" yaml:"cpuCores"`
	GPUCores     int        `json:"gpuCores" yaml:"gpuCores"`
	Memory       string     `json:"memory" yaml:"memory"`
	RAMType      string     `json:"ramType,omitempty" yaml:"ramType,omitempty"`
	Display      string     `json:"display,omitempty" yaml:"display,omitempty"`
	Year         int        `json:"year" yaml:"year"`
	SingleCore   int        `json:"singleCore" yaml:"singleCore"`
	MultiCore    int        `json:"multiCore" yaml:"multiCore"`
	Metal        int        `json:"metal" yaml:"metal"`
	Price        float64    `json:"price" yaml:"price"`
	CurrentPrice *float64   `json:"currentPrice,omitempty" yaml:"currentPrice,omitempty"`
	Description  string     `json:"description" yaml:"description"`
	IsReference  bool       `json:"isReference,omitempty" yaml:"isReference,omitempty"`
}

// EffectivePrice returns CurrentPrice when it is set and positive, else Price.
func (m Machine) EffectivePrice() float64 {
	if m.CurrentPrice != nil && *m.CurrentPrice > 0 {
		return *m.CurrentPrice
	}
	return m.Price
}

// SearchText is the lower-cased haystack matched by free-text search.
func (m Machine) SearchText() string {
	parts := []string{
		m.Name,
		m.Chip,
		strconv.Itoa(m.Year),
		m.Memory,
		m.CPUCores,
		strconv.Itoa(m.GPUCores),
		m.OS,
	}
	return strings.ToLower(strings.Join(parts, " "))
}

var (
	memNumber = regexp.MustCompile(`\d+(?:\.\d+)?`)
	memUnit   = regexp.MustCompile(`(?i)(TB|GB)`)
)

// BaseMemoryGB parses the smallest configuration out of the memory
// descriptor ("16–128GB" → 16, "1TB" → 1024).  It returns 0 when the
// descriptor has no number.
func (m Machine) BaseMemoryGB() float64 {
	num := memNumber.FindString(m.Memory)
	if num == "" {
		return 0
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}
	if u := memUnit.FindString(m.Memory); strings.EqualFold(u, "TB") {
		v *= 1024
	}
	return v
}

// Validate checks the record invariants enforced at load time.
func (m Machine) Validate() error {
	var problems []string
	if strings.TrimSpace(m.ID) == "" {
		problems = append(problems, "id is required")
	}
	if strings.TrimSpace(m.Name) == "" {
		problems = append(problems, "name is required")
	}
	if !m.Type.IsValid() {
		problems = append(problems, fmt.Sprintf("unknown type %q", m.Type))
	}
	if !m.Family.IsValid() {
		problems = append(problems, fmt.Sprintf("unknown family %q", m.Family))
	}
	if m.Type.IsValid() && m.Type.IsReference() != m.IsReference {
		problems = append(problems, fmt.Sprintf("type %q disagrees with isReference=%t", m.Type, m.IsReference))
	}
	if m.GPUCores < 0 {
		problems = append(problems, "gpuCores must be ≥ 0")
	}
	if m.SingleCore < 0 || m.MultiCore < 0 || m.Metal < 0 {
		problems = append(problems, "benchmark scores must be ≥ 0")
	}
	if m.Price < 0 {
		problems = append(problems, "price must be ≥ 0")
	}
	if m.CurrentPrice != nil && *m.CurrentPrice < 0 {
		problems = append(problems, "currentPrice must be ≥ 0")
	}
	if m.Year <= 0 {
		problems = append(problems, "year must be positive")
	}
	if len(problems) == 0 {
		return nil
	}
	return errors.New(errors.ErrCodeDatasetInvalid, "invalid machine record").
		WithDetail(fmt.Sprintf("%s: %s", m.ID, strings.Join(problems, "; ")))
}

// ValidateAll validates every record and rejects duplicate ids.
func ValidateAll(records []Machine) error {
	seen := make(map[string]struct{}, len(records))
	for _, m := range records {
		if err := m.Validate(); err != nil {
			return err
		}
		if _, dup := seen[m.ID]; dup {
			return errors.New(errors.ErrCodeDatasetInvalid, "duplicate machine id").WithDetail(m.ID)
		}
		seen[m.ID] = struct{}{}
	}
	return nil
}

//Personal.AI order the ending
