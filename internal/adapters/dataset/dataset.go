// Package dataset loads treatment inputs from YAML or CSV files.
package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"

	"github.com/emiliopalmerini/mcba/internal/domain"
	"github.com/emiliopalmerini/mcba/internal/ports"
	"github.com/emiliopalmerini/mcba/internal/util"
)

// ErrUnsupportedFormat is returned for file extensions other than .yaml, .yml and .csv.
var ErrUnsupportedFormat = errors.New("unsupported dataset format")

// yamlFile is the on-disk YAML layout:
//
//	treatments:
//	  - name: Precision irrigation upgrade
//	    pv_benefits: "620,000"
//	    pv_costs: 320000
//	    notes: optional
type yamlFile struct {
	Treatments []yamlTreatment `yaml:"treatments"`
}

type yamlTreatment struct {
	Name       string `yaml:"name"`
	PVBenefits amount `yaml:"pv_benefits"`
	PVCosts    amount `yaml:"pv_costs"`
	Notes      string `yaml:"notes"`
}

// amount accepts numbers or free-form numeric strings and coerces them.
type amount struct {
	value *float64
}

func (a *amount) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a number, got %s", node.Line, kindName(node.Kind))
	}
	a.value = util.AmountPtr(node.Value)
	return nil
}

// csvTreatment matches the export header, so an exported file loads back.
// Derived columns are ignored.
type csvTreatment struct {
	Name       string `csv:"Treatment"`
	PVBenefits string `csv:"PV benefits"`
	PVCosts    string `csv:"PV costs"`
	Notes      string `csv:"Notes"`
}

// Load reads treatment inputs from path, choosing the parser by extension.
func Load(path string) ([]domain.TreatmentInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".csv":
		return ParseCSV(data)
	default:
		return nil, fmt.Errorf("%w: %s (use .yaml, .yml or .csv)", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ParseYAML decodes the YAML dataset layout.
func ParseYAML(data []byte) ([]domain.TreatmentInput, error) {
	var f yamlFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML dataset: %w", err)
	}

	inputs := make([]domain.TreatmentInput, 0, len(f.Treatments))
	for _, t := range f.Treatments {
		inputs = append(inputs, domain.TreatmentInput{
			Name:       util.StringPtr(util.SingleLine(t.Name)),
			PVBenefits: t.PVBenefits.value,
			PVCosts:    t.PVCosts.value,
			Notes:      util.StringPtr(util.SingleLine(strings.TrimSpace(t.Notes))),
		})
	}
	return inputs, nil
}

// ParseCSV decodes a CSV dataset with at least a "Treatment" column.
func ParseCSV(data []byte) ([]domain.TreatmentInput, error) {
	var rows []csvTreatment
	if err := gocsv.UnmarshalBytes(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")), &rows); err != nil {
		return nil, fmt.Errorf("failed to parse CSV dataset: %w", err)
	}

	inputs := make([]domain.TreatmentInput, 0, len(rows))
	for _, r := range rows {
		inputs = append(inputs, domain.TreatmentInput{
			Name:       util.StringPtr(util.SingleLine(strings.TrimSpace(r.Name))),
			PVBenefits: util.AmountPtr(r.PVBenefits),
			PVCosts:    util.AmountPtr(r.PVCosts),
			Notes:      util.StringPtr(util.SingleLine(r.Notes)),
		})
	}
	return inputs, nil
}

// LoadInto replaces the contents of store with the dataset at path.
// Ids restart at 1. The store is left untouched when loading fails.
func LoadInto(store ports.TreatmentStore, path string) error {
	inputs, err := Load(path)
	if err != nil {
		return err
	}
	Fill(store, inputs)
	return nil
}

// Fill clears store and adds inputs in order.
func Fill(store ports.TreatmentStore, inputs []domain.TreatmentInput) {
	store.Clear()
	for _, in := range inputs {
		store.Add(in)
	}
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.AliasNode:
		return "alias"
	default:
		return "document"
	}
}
