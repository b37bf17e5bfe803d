package main

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTemplate = `<html>
<head><title>My Animal Repository</title></head>
<body>
<ul class="cards">
` + DefaultPlaceholder + `
</ul>
</body>
</html>
`

func parseDocument(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestRenderOneCardPerRecord(t *testing.T) {
	r := NewRenderer("")
	records := sampleRecords()

	out, err := r.Render(records, testTemplate)
	require.NoError(t, err)

	doc := parseDocument(t, out)
	cards := doc.Find("li.cards__item")
	require.Equal(t, len(records), cards.Length())

	cards.Each(func(i int, s *goquery.Selection) {
		assert.Equal(t, records[i].Name, s.Find(".card__title").Text(), "card %d out of order", i)
	})
	assert.Zero(t, doc.Find("[" + NoResultsMarker + "]").Length())
}

func TestRenderEmptyRecords(t *testing.T) {
	r := NewRenderer("")
	r.EmptyMessage = "No animals found for skin type 'Feathers'."

	out, err := r.Render(nil, testTemplate)
	require.NoError(t, err)

	doc := parseDocument(t, out)
	empty := doc.Find("[" + NoResultsMarker + "]")
	require.Equal(t, 1, empty.Length())
	assert.Equal(t, 1, doc.Find("li.cards__item").Length())
	assert.Contains(t, empty.Text(), "Feathers")
}

func TestRenderPreservesTemplateText(t *testing.T) {
	r := NewRenderer("")

	out, err := r.Render(sampleRecords(), testTemplate)
	require.NoError(t, err)

	idx := strings.Index(testTemplate, DefaultPlaceholder)
	prefix := testTemplate[:idx]
	suffix := testTemplate[idx+len(DefaultPlaceholder):]

	assert.True(t, strings.HasPrefix(out, prefix), "prefix changed")
	assert.True(t, strings.HasSuffix(out, suffix), "suffix changed")
	assert.NotContains(t, out, DefaultPlaceholder)
}

func TestRenderPlaceholderErrors(t *testing.T) {
	tests := []struct {
		name     string
		template string
	}{
		{"missing", "<html><body></body></html>"},
		{"duplicated", DefaultPlaceholder + "<hr>" + DefaultPlaceholder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := NewRenderer("").Render(sampleRecords(), tt.template)
			require.Error(t, err)
			assert.True(t, IsKind(err, KindTemplate), "got %v", err)
			assert.Empty(t, out)
		})
	}
}

func TestRenderCustomPlaceholder(t *testing.T) {
	out, err := NewRenderer("{{ANIMALS}}").Render(sampleRecords()[:1], "<ul>{{ANIMALS}}</ul>")
	require.NoError(t, err)
	assert.Contains(t, out, "Red Fox")
}

func TestFragmentOmitsAbsentFields(t *testing.T) {
	rec := AnimalRecord{
		Name:            "King Cobra",
		Characteristics: map[string]string{"skin_type": "Scales", "diet": ""},
	}

	out, err := NewRenderer("").Fragment([]AnimalRecord{rec})
	require.NoError(t, err)

	assert.Contains(t, out, "<strong>Skin type:</strong> Scales")
	assert.NotContains(t, out, "Diet")
	assert.NotContains(t, out, "Locations")
	assert.NotContains(t, out, "card__taxonomy")
}

func TestFragmentDetailOrder(t *testing.T) {
	rec := AnimalRecord{
		Name:      "Red Fox",
		Taxonomy:  &Taxonomy{ScientificName: "Vulpes vulpes", Class: "Mammalia"},
		Locations: []string{"Asia", "Europe"},
		Characteristics: map[string]string{
			"top_speed": "50 km/h",
			"diet":      "Omnivore",
			"skin_type": "Fur",
			"color":     "Red",
		},
	}

	out, err := NewRenderer("").Fragment([]AnimalRecord{rec})
	require.NoError(t, err)

	labels := []string{"Scientific name", "Class", "Diet", "Locations", "Skin type", "Top speed", "Color"}
	last := -1
	for _, label := range labels {
		idx := strings.Index(out, "<strong>"+label+":</strong>")
		require.GreaterOrEqual(t, idx, 0, "label %q missing", label)
		assert.Greater(t, idx, last, "label %q out of order", label)
		last = idx
	}
	assert.Contains(t, out, "Asia, Europe")
}

func TestFragmentEscapesValues(t *testing.T) {
	rec := AnimalRecord{Name: `<script>alert("x")</script>`}

	out, err := NewRenderer("").Fragment([]AnimalRecord{rec})
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestCharacteristicLabel(t *testing.T) {
	tests := map[string]string{
		"top_speed": "Top speed",
		"diet":      "Diet",
		"skin_type": "Skin type",
		"":          "",
	}
	for in, want := range tests {
		if got := characteristicLabel(in); got != want {
			t.Errorf("characteristicLabel(%q) = %q, want %q", in, got, want)
		}
	}
}
