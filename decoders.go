package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// RecordDecoder turns a data file or API body into animal records
type RecordDecoder interface {
	CanHandle(source, contentType string) bool
	Decode(r io.Reader) ([]AnimalRecord, error)
}

// YAMLDecoder handles .yaml/.yml files and YAML responses
type YAMLDecoder struct{}

func (d *YAMLDecoder) CanHandle(source, contentType string) bool {
	switch strings.ToLower(filepath.Ext(source)) {
	case ".yaml", ".yml":
		return true
	}
	return strings.Contains(contentType, "yaml")
}

func (d *YAMLDecoder) Decode(r io.Reader) ([]AnimalRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading YAML: %w", err)
	}

	var records []AnimalRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	return checkRecords(records)
}

// JSONDecoder handles JSON content (fallback)
type JSONDecoder struct{}

func (d *JSONDecoder) CanHandle(source, contentType string) bool {
	return true // Always handles as fallback
}

func (d *JSONDecoder) Decode(r io.Reader) ([]AnimalRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading JSON: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("expected a JSON array of animals")
	}

	var records []AnimalRecord
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	return checkRecords(records)
}

// checkRecords enforces the presence checks shared by every decoder
func checkRecords(records []AnimalRecord) ([]AnimalRecord, error) {
	for i, r := range records {
		if strings.TrimSpace(r.Name) == "" {
			return nil, fmt.Errorf("animal %d has no name", i)
		}
	}
	if records == nil {
		records = []AnimalRecord{}
	}
	return records, nil
}
