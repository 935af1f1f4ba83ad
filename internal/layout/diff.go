package layout

import (
	"sort"
	"strings"

	"github.com/aymanbagabas/go-udiff"
)

// SelectionDiff renders a unified diff between the selection recorded in d
// and a planned selection. Lines are sorted so that only membership changes
// show. It returns "" when the selections match or d is nil.
func SelectionDiff(d *Descriptor, languages []string, componentIDs []string) string {
	if d == nil {
		return ""
	}
	previousIDs := make([]string, 0, len(d.Add))
	for _, entry := range d.Add {
		id, _, _ := strings.Cut(entry, ";")
		previousIDs = append(previousIDs, id)
	}
	from := selectionLines(d.AddProductLang, previousIDs)
	to := selectionLines(languages, componentIDs)
	return udiff.Unified(DescriptorFile, "planned", from, to)
}

func selectionLines(languages []string, ids []string) string {
	lines := make([]string, 0, len(languages)+len(ids))
	for _, lang := range languages {
		lines = append(lines, "--lang "+strings.ToLower(lang))
	}
	for _, id := range ids {
		lines = append(lines, "--add "+id)
	}
	sort.Strings(lines)
	lines = dedupe(lines)
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func dedupe(sorted []string) []string {
	out := sorted[:0]
	for i, s := range sorted {
		if i > 0 && s == sorted[i-1] {
			continue
		}
		out = append(out, s)
	}
	return out
}
