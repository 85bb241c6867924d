package catalog

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Suggestion is an autocomplete candidate: a display name and the id it resolves to.
type Suggestion struct {
	ID   string
	Name string
}

// suggestions implements fuzzy.Source over id/name pairs
type suggestions []Suggestion

func (s suggestions) String(i int) string { return s[i].Name + " " + s[i].ID }
func (s suggestions) Len() int            { return len(s) }

// maxSuggestions matches Discord's autocomplete choice limit.
const maxSuggestions = 25

func suggest(query string, items suggestions) []Suggestion {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		if len(items) > maxSuggestions {
			return items[:maxSuggestions]
		}
		return items
	}

	matches := fuzzy.FindFrom(query, items)
	out := make([]Suggestion, 0, min(len(matches), maxSuggestions))
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, items[m.Index])
	}
	return out
}

func (c *Catalog) SuggestEggs(query string) []Suggestion {
	items := make(suggestions, 0, len(c.eggOrder))
	for _, e := range c.Eggs() {
		items = append(items, Suggestion{ID: e.ID, Name: e.Name})
	}
	return suggest(query, items)
}

func (c *Catalog) SuggestLocations(query string) []Suggestion {
	items := make(suggestions, 0, len(c.locationOrder))
	for _, l := range c.Locations() {
		items = append(items, Suggestion{ID: l.ID, Name: l.Name})
	}
	return suggest(query, items)
}

// SuggestTools searches every domain's tools.
func (c *Catalog) SuggestTools(query string) []Suggestion {
	var items suggestions
	for _, d := range GatheringDomains {
		for _, t := range c.ToolsFor(d) {
			items = append(items, Suggestion{ID: t.ID, Name: t.Name})
		}
	}
	return suggest(query, items)
}

func (c *Catalog) SuggestConsumables(query string) []Suggestion {
	items := make(suggestions, 0, len(c.effectOrder))
	for _, e := range c.Consumables() {
		items = append(items, Suggestion{ID: e.ID, Name: e.Name})
	}
	return suggest(query, items)
}
