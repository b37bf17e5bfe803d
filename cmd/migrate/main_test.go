package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

const duplicatedJSON = `[
  {"name": "Red Fox", "characteristics": {"skin_type": "Fur"}},
  {"name": "red fox ", "characteristics": {"skin_type": "Hair"}},
  {"name": "Iguana", "characteristics": {"skin_type": "Scales"}}
]`

func TestRemoveDuplicatesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animals_data.json")
	os.WriteFile(path, []byte(duplicatedJSON), 0644)

	removed, err := removeDuplicates(path)
	if err != nil {
		t.Fatalf("removeDuplicates() error = %v", err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}

	content, _ := os.ReadFile(path)
	if strings.Contains(string(content), "Hair") {
		t.Error("later duplicate was kept")
	}
	if !strings.Contains(string(content), "Iguana") {
		t.Error("unique animal was dropped")
	}
}

func TestRemoveDuplicatesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animals.yaml")
	content := `- name: Bear
  characteristics:
    skin_type: Hair
- name: Bear
- name: Owl
`
	os.WriteFile(path, []byte(content), 0644)

	removed, err := removeDuplicates(path)
	if err != nil {
		t.Fatalf("removeDuplicates() error = %v", err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}

	var animals []map[string]any
	data, _ := os.ReadFile(path)
	if err := yaml.Unmarshal(data, &animals); err != nil {
		t.Fatalf("rewritten file unreadable: %v", err)
	}
	if len(animals) != 2 || animals[0]["characteristics"] == nil {
		t.Errorf("unexpected animals after dedupe: %v", animals)
	}
}

func TestRemoveDuplicatesNoChangeLeavesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animals_data.json")
	original := `[{"name":"Owl"}]`
	os.WriteFile(path, []byte(original), 0644)

	removed, err := removeDuplicates(path)
	if err != nil || removed != 0 {
		t.Fatalf("removeDuplicates() = %d, %v", removed, err)
	}
	if data, _ := os.ReadFile(path); string(data) != original {
		t.Error("file rewritten although nothing was removed")
	}
}

func TestConvertToYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animals_data.json")
	os.WriteFile(path, []byte(duplicatedJSON), 0644)

	target, err := convertToYAML(path)
	if err != nil {
		t.Fatalf("convertToYAML() error = %v", err)
	}
	if filepath.Ext(target) != ".yaml" {
		t.Errorf("target = %s, want .yaml file", target)
	}

	data, _ := os.ReadFile(target)
	if strings.Contains(string(data), "{") {
		t.Errorf("output still uses flow style:\n%s", data)
	}

	var animals []struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(data, &animals); err != nil {
		t.Fatalf("converted file unreadable: %v", err)
	}
	if len(animals) != 3 || animals[2].Name != "Iguana" {
		t.Errorf("converted animals = %v", animals)
	}
}

func TestConvertToYAMLRejects(t *testing.T) {
	dir := t.TempDir()
	object := filepath.Join(dir, "object.json")
	os.WriteFile(object, []byte(`{"name": "Owl"}`), 0644)

	for _, path := range []string{filepath.Join(dir, "a.yaml"), object, filepath.Join(dir, "missing.json")} {
		if _, err := convertToYAML(path); err == nil {
			t.Errorf("convertToYAML(%s) should fail", path)
		}
	}
}
