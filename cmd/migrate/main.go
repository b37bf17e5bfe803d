package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"
)

func main() {
	if len(os.Args) < 3 {
		log.Fatal("Usage: migrate <remove-duplicates|to-yaml> <data-file>")
	}

	command := os.Args[1]
	dataFile := os.Args[2]

	switch command {
	case "remove-duplicates":
		removed, err := removeDuplicates(dataFile)
		if err != nil {
			log.Fatal(err)
		}
		log.Infof("Removed %d duplicate animals from %s", removed, dataFile)
	case "to-yaml":
		target, err := convertToYAML(dataFile)
		if err != nil {
			log.Fatal(err)
		}
		log.Infof("Wrote %s", target)
	default:
		log.Fatalf("Unknown command %q", command)
	}
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// removeDuplicates drops animals whose name was already seen; the first one wins
func removeDuplicates(path string) (int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading file %s: %w", path, err)
	}

	var out []byte
	var removed int
	if isYAML(path) {
		out, removed, err = dedupeYAML(content)
	} else {
		out, removed, err = dedupeJSON(content)
	}
	if err != nil {
		return 0, fmt.Errorf("processing %s: %w", path, err)
	}

	if removed == 0 {
		return 0, nil
	}
	if err := atomic.WriteFile(path, bytes.NewReader(out)); err != nil {
		return 0, fmt.Errorf("writing file %s: %w", path, err)
	}
	return removed, nil
}

func dedupeJSON(content []byte) ([]byte, int, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(content, &entries); err != nil {
		return nil, 0, fmt.Errorf("parsing JSON: %w", err)
	}

	seen := make(map[string]bool)
	kept := make([]json.RawMessage, 0, len(entries))
	for _, entry := range entries {
		var animal struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(entry, &animal); err != nil {
			return nil, 0, fmt.Errorf("parsing animal: %w", err)
		}
		key := normalizeName(animal.Name)
		if key != "" && seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, entry)
	}

	out, err := json.MarshalIndent(kept, "", "  ")
	if err != nil {
		return nil, 0, err
	}
	return append(out, '\n'), len(entries) - len(kept), nil
}

func dedupeYAML(content []byte) ([]byte, int, error) {
	seq, doc, err := parseSequence(content)
	if err != nil {
		return nil, 0, err
	}

	seen := make(map[string]bool)
	kept := seq.Content[:0]
	total := len(seq.Content)
	for _, item := range seq.Content {
		key := normalizeName(mappingValue(item, "name"))
		if key != "" && seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, item)
	}
	seq.Content = kept

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, 0, err
	}
	return out, total - len(kept), nil
}

// convertToYAML writes a YAML copy of a JSON data file next to it
func convertToYAML(path string) (string, error) {
	if isYAML(path) {
		return "", fmt.Errorf("%s is already YAML", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading file %s: %w", path, err)
	}

	// JSON is valid YAML, so the node tree keeps key order
	_, doc, err := parseSequence(content)
	if err != nil {
		return "", fmt.Errorf("processing %s: %w", path, err)
	}
	clearStyle(doc)

	out, err := yaml.Marshal(doc)
	if err != nil {
		return "", err
	}

	target := strings.TrimSuffix(path, filepath.Ext(path)) + ".yaml"
	if err := atomic.WriteFile(target, bytes.NewReader(out)); err != nil {
		return "", fmt.Errorf("writing file %s: %w", target, err)
	}
	return target, nil
}

func parseSequence(content []byte) (*yaml.Node, *yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, nil, fmt.Errorf("parsing data: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.SequenceNode {
		return nil, nil, fmt.Errorf("expected a list of animals")
	}
	return doc.Content[0], &doc, nil
}

func mappingValue(node *yaml.Node, key string) string {
	if node.Kind != yaml.MappingNode {
		return ""
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1].Value
		}
	}
	return ""
}

// clearStyle switches flow-style (JSON) nodes to block style
func clearStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		clearStyle(child)
	}
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
