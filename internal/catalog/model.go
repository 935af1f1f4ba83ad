// Package catalog holds the Visual Studio component catalog model and the
// extractor that reads it from the vendor documentation page.
package catalog

import (
	"regexp"
	"strings"
)

// Language is an installer language pack.
type Language struct {
	Title string `json:"Title"`
	Key   string `json:"Key"`
}

// Channel is one selectable Visual Studio release line.
// Fields other than the two URLs are informational.
type Channel struct {
	Name          string `json:"Name"`
	DetailURL     string `json:"DetailUrl"`
	DownloaderURL string `json:"DownloaderUrl"`
}

var channelIDPattern = regexp.MustCompile(`vs-\d+`)

// ID returns the data-moniker identifier (for example "vs-2022") embedded in
// the channel's detail URL, or "" when the URL carries none.
func (c Channel) ID() string {
	return channelIDPattern.FindString(c.DetailURL)
}

// DisplayName returns Name, falling back to the channel id and then the detail URL.
func (c Channel) DisplayName() string {
	if name := strings.TrimSpace(c.Name); name != "" {
		return name
	}
	if id := c.ID(); id != "" {
		return id
	}
	return c.DetailURL
}

// Component is either a leaf (non-empty ID, no children) or a group header
// (empty ID, leaf children). Groups never nest.
type Component struct {
	Title       string
	ID          string
	Description string
	Selected    bool
	Children    []Component
}

// IsGroup reports whether c is a group header.
func (c Component) IsGroup() bool {
	return c.ID == ""
}

// Leaves returns every leaf of the tree in tree order: top-level leaves and
// group children interleaved as they appear.
func Leaves(components []Component) []Component {
	var out []Component
	for _, c := range components {
		if !c.IsGroup() {
			out = append(out, c)
			continue
		}
		out = append(out, c.Children...)
	}
	return out
}

// SelectedIDs returns the ids of selected leaves in tree order.
func SelectedIDs(components []Component) []string {
	var ids []string
	for _, leaf := range Leaves(components) {
		if leaf.Selected {
			ids = append(ids, leaf.ID)
		}
	}
	return ids
}

// Find returns a pointer to the leaf with id, searching top-level leaves first
// and then group children.
func Find(components []Component, id string) *Component {
	for i := range components {
		if !components[i].IsGroup() && components[i].ID == id {
			return &components[i]
		}
	}
	for i := range components {
		for j := range components[i].Children {
			if components[i].Children[j].ID == id {
				return &components[i].Children[j]
			}
		}
	}
	return nil
}

// ClearSelection unselects every leaf.
func ClearSelection(components []Component) {
	for i := range components {
		components[i].Selected = false
		for j := range components[i].Children {
			components[i].Children[j].Selected = false
		}
	}
}

// Select marks the leaves named by ids as selected and returns the ids that
// matched no leaf.
func Select(components []Component, ids []string) []string {
	var missing []string
	for _, id := range ids {
		leaf := Find(components, id)
		if leaf == nil {
			missing = append(missing, id)
			continue
		}
		leaf.Selected = true
	}
	return missing
}

// FindLanguage returns the language whose key matches key case-insensitively.
func FindLanguage(languages []Language, key string) (Language, bool) {
	for _, lang := range languages {
		if strings.EqualFold(lang.Key, key) {
			return lang, true
		}
	}
	return Language{}, false
}

// LanguageKeys returns the keys of languages in order.
func LanguageKeys(languages []Language) []string {
	keys := make([]string, len(languages))
	for i, lang := range languages {
		keys[i] = lang.Key
	}
	return keys
}
