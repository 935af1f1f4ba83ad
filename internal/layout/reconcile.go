package layout

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/conn-castle/vs-layout/internal/catalog"
	"github.com/conn-castle/vs-layout/internal/messages"
)

var versionPattern = regexp.MustCompile(`aka\.ms/vs/(\d+)/release`)

// VersionToken returns the major version in an aka.ms/vs/{version}/release URL.
func VersionToken(url string) (string, bool) {
	m := versionPattern.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// WarningCode classifies a reconciliation warning.
type WarningCode string

// WarningVersionMismatch means the layout folder was created for another major version.
const WarningVersionMismatch WarningCode = "version-mismatch"

// Warning is a non-fatal advisory for the caller to present.
type Warning struct {
	Code    WarningCode
	Message string
}

// Result is the outcome of Reconcile. Languages is the complete selected
// language set and replaces any earlier selection.
type Result struct {
	Languages []catalog.Language
	Warnings  []Warning
	// Matched counts add entries that selected a component.
	Matched int
}

// Reconcile marks the components and languages recorded in d as selected.
// Entries that match nothing in the current catalog are ignored. A nil
// descriptor leaves everything untouched.
func Reconcile(components []catalog.Component, languages []catalog.Language, downloaderURL string, d *Descriptor) Result {
	var result Result
	if d == nil {
		return result
	}

	layoutVersion, _ := VersionToken(d.ChannelURI)
	selectedVersion, _ := VersionToken(downloaderURL)
	if layoutVersion != selectedVersion {
		result.Warnings = append(result.Warnings, Warning{
			Code:    WarningVersionMismatch,
			Message: fmt.Sprintf(messages.WarningVersionMismatchFmt, displayVersion(layoutVersion), displayVersion(selectedVersion)),
		})
	}

	for _, entry := range d.Add {
		id, _, _ := strings.Cut(entry, ";")
		if leaf := findForAdd(components, id); leaf != nil {
			leaf.Selected = true
			result.Matched++
		}
	}

	seen := make(map[string]bool, len(d.AddProductLang))
	for _, key := range d.AddProductLang {
		lang, ok := catalog.FindLanguage(languages, key)
		if !ok || seen[lang.Key] {
			continue
		}
		seen[lang.Key] = true
		result.Languages = append(result.Languages, lang)
	}
	return result
}

// findForAdd searches top-level leaves, then the children of the last group
// that has any.
func findForAdd(components []catalog.Component, id string) *catalog.Component {
	if id == "" {
		return nil
	}
	for i := range components {
		if !components[i].IsGroup() && components[i].ID == id {
			return &components[i]
		}
	}
	for i := len(components) - 1; i >= 0; i-- {
		if len(components[i].Children) == 0 {
			continue
		}
		for j := range components[i].Children {
			if components[i].Children[j].ID == id {
				return &components[i].Children[j]
			}
		}
		return nil
	}
	return nil
}

func displayVersion(token string) string {
	if token == "" {
		return "?"
	}
	return token
}
