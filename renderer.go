package main

import (
	"fmt"
	"html/template"
	"sort"
	"strings"
)

const (
	// DefaultPlaceholder is the marker replaced with the rendered cards
	DefaultPlaceholder = "__REPLACE_ANIMALS_INFO__"
	// NoResultsMarker is the attribute carried by the empty-result fragment
	NoResultsMarker = "data-no-results"

	defaultEmptyMessage = "No animals found."
)

// characteristicOrder lists the characteristics shown first, in display order
var characteristicOrder = []string{
	"diet", "type", SkinTypeAttribute, "lifespan", "weight", "top_speed", "temperament",
}

var cardTmpl = template.Must(template.New("card").Parse(
	`    <li class="cards__item">
        <div class="card__title">{{.Name}}</div>
        <div class="card__text">
{{- if .Taxonomy}}
            <ul class="card__taxonomy">
{{- range .Taxonomy}}
                <li class="card__detail"><strong>{{.Label}}:</strong> {{.Value}}</li>
{{- end}}
            </ul>
{{- end}}
            <ul class="card__details">
{{- range .Details}}
                <li class="card__detail"><strong>{{.Label}}:</strong> {{.Value}}</li>
{{- end}}
            </ul>
        </div>
    </li>`))

var emptyTmpl = template.Must(template.New("empty").Parse(
	`    <li class="cards__item cards__item--empty" ` + NoResultsMarker + `>
        <div class="card__title">{{.}}</div>
    </li>`))

type detail struct {
	Label string
	Value string
}

type cardView struct {
	Name     string
	Taxonomy []detail
	Details  []detail
}

// Renderer fills an HTML template with one card per animal
type Renderer struct {
	Placeholder  string
	EmptyMessage string
}

// NewRenderer creates a renderer using the given placeholder marker
func NewRenderer(placeholder string) *Renderer {
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	return &Renderer{Placeholder: placeholder, EmptyMessage: defaultEmptyMessage}
}

// Render substitutes the rendered fragments for the placeholder. The
// placeholder must occur exactly once in tmpl.
func (r *Renderer) Render(records []AnimalRecord, tmpl string) (string, error) {
	switch n := strings.Count(tmpl, r.Placeholder); {
	case r.Placeholder == "":
		return "", newError("render", KindTemplate, "", fmt.Errorf("empty placeholder marker"))
	case n == 0:
		return "", newError("render", KindTemplate, "", fmt.Errorf("placeholder %q not found", r.Placeholder))
	case n > 1:
		return "", newError("render", KindTemplate, "", fmt.Errorf("placeholder %q found %d times, want 1", r.Placeholder, n))
	}

	fragment, err := r.Fragment(records)
	if err != nil {
		return "", err
	}
	return strings.Replace(tmpl, r.Placeholder, fragment, 1), nil
}

// Fragment renders the cards for records, or the no-results block when empty
func (r *Renderer) Fragment(records []AnimalRecord) (string, error) {
	var b strings.Builder

	if len(records) == 0 {
		msg := r.EmptyMessage
		if msg == "" {
			msg = defaultEmptyMessage
		}
		if err := emptyTmpl.Execute(&b, msg); err != nil {
			return "", newError("render", KindTemplate, "", err)
		}
		return b.String(), nil
	}

	for i, rec := range records {
		if i > 0 {
			b.WriteByte('\n')
		}
		if err := cardTmpl.Execute(&b, newCardView(rec)); err != nil {
			return "", newError("render", KindTemplate, "", fmt.Errorf("card %q: %w", rec.Name, err))
		}
	}
	return b.String(), nil
}

func newCardView(rec AnimalRecord) cardView {
	view := cardView{Name: rec.Name}

	if !rec.Taxonomy.IsEmpty() {
		t := rec.Taxonomy
		for _, d := range []detail{
			{"Scientific name", t.ScientificName},
			{"Kingdom", t.Kingdom},
			{"Phylum", t.Phylum},
			{"Class", t.Class},
			{"Order", t.Order},
			{"Family", t.Family},
			{"Genus", t.Genus},
		} {
			if d.Value != "" {
				view.Taxonomy = append(view.Taxonomy, d)
			}
		}
	}

	shown := make(map[string]bool, len(characteristicOrder))
	for _, key := range characteristicOrder {
		shown[key] = true
		if v, ok := rec.Characteristic(key); ok {
			view.Details = append(view.Details, detail{characteristicLabel(key), v})
		}
		// locations sit right after diet on the card
		if key == "diet" && len(rec.Locations) > 0 {
			view.Details = append(view.Details, detail{"Locations", strings.Join(rec.Locations, ", ")})
		}
	}

	var rest []string
	for key := range rec.Characteristics {
		if !shown[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		if v, ok := rec.Characteristic(key); ok {
			view.Details = append(view.Details, detail{characteristicLabel(key), v})
		}
	}

	return view
}

// characteristicLabel turns "top_speed" into "Top speed"
func characteristicLabel(key string) string {
	label := strings.ReplaceAll(key, "_", " ")
	if label == "" {
		return label
	}
	return strings.ToUpper(label[:1]) + label[1:]
}
