package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/conn-castle/vs-layout/internal/messages"
)

const (
	// UnaffiliatedHeadingID marks the heading whose table lists standalone components.
	UnaffiliatedHeadingID = "unaffiliated-components"
	// CoreEditorWorkloadID is always installed and never offered for selection.
	CoreEditorWorkloadID = "Microsoft.VisualStudio.Workload.CoreEditor"
	// MonikerAttr scopes page sections to one product version.
	MonikerAttr = "data-moniker"
)

// ErrScopeNotFound reports that the page has no section for the requested channel,
// usually because the page layout changed or the channel id is wrong.
var ErrScopeNotFound = errors.New(messages.CatalogScopeNotFound)

// Skipped records a heading that could not be turned into a component.
type Skipped struct {
	Title  string
	Reason string
}

// Extraction is the result of reading one catalog page.
type Extraction struct {
	Components []Component
	Skipped    []Skipped
}

// Extract reads the workloads and components listed under the section whose
// data-moniker equals channelID. Headings whose structure is broken are
// reported in Skipped; only a missing section is an error.
func Extract(doc *goquery.Document, channelID string) (*Extraction, error) {
	if doc == nil {
		return nil, errors.New(messages.CatalogDocumentRequired)
	}
	channelID = strings.TrimSpace(channelID)
	if channelID == "" {
		return nil, errors.New(messages.CatalogChannelIDRequired)
	}

	scope := doc.Find("[" + MonikerAttr + "]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.AttrOr(MonikerAttr, "") == channelID
	}).First()
	if scope.Length() == 0 {
		return nil, fmt.Errorf(messages.CatalogScopeNotFoundFmt, ErrScopeNotFound, channelID)
	}

	result := &Extraction{}
	scope.ChildrenFiltered("h2").Each(func(_ int, heading *goquery.Selection) {
		title := strings.TrimSpace(heading.Text())
		if heading.AttrOr("id", "") == UnaffiliatedHeadingID {
			group, reason := extractGroup(heading.Get(0), title)
			if reason != "" {
				result.Skipped = append(result.Skipped, Skipped{Title: title, Reason: reason})
				return
			}
			result.Components = append(result.Components, group)
			return
		}

		leaf, keep, reason := extractLeaf(heading.Get(0), title)
		if reason != "" {
			result.Skipped = append(result.Skipped, Skipped{Title: title, Reason: reason})
			return
		}
		if keep {
			result.Components = append(result.Components, leaf)
		}
	})
	return result, nil
}

// extractGroup reads the component table that follows heading into a group.
// Rows without an id are dropped; a table with no usable rows skips the group.
func extractGroup(heading *html.Node, title string) (Component, string) {
	table := nextSibling(heading, isElement(atom.Table))
	if table == nil {
		return Component{}, messages.CatalogSkipMissingTable
	}

	group := Component{Title: title}
	rows := goquery.NewDocumentFromNode(table).Selection.ChildrenFiltered("tbody").ChildrenFiltered("tr")
	rows.Each(func(_ int, row *goquery.Selection) {
		cells := row.ChildrenFiltered("td")
		if cells.Length() < 2 {
			return
		}
		id := strings.TrimSpace(cells.Eq(0).Text())
		if id == "" {
			return
		}
		group.Children = append(group.Children, Component{
			ID:    id,
			Title: strings.TrimSpace(cells.Eq(1).Text()),
		})
	})
	if len(group.Children) == 0 {
		return Component{}, messages.CatalogSkipEmptyTable
	}
	return group, ""
}

// extractLeaf reads the id and description paragraphs that follow heading.
// keep is false for the core editor workload.
func extractLeaf(heading *html.Node, title string) (Component, bool, string) {
	idParagraph := nextSibling(heading, isElement(atom.P))
	if idParagraph == nil {
		return Component{}, false, messages.CatalogSkipMissingIDParagraph
	}
	id := lastInlineText(idParagraph)
	if id == "" {
		return Component{}, false, messages.CatalogSkipEmptyID
	}
	if strings.EqualFold(id, CoreEditorWorkloadID) {
		return Component{}, false, ""
	}

	descParagraph := nextSibling(idParagraph, isElement(atom.P))
	if descParagraph == nil {
		return Component{}, false, messages.CatalogSkipMissingDescription
	}
	return Component{
		Title:       title,
		ID:          id,
		Description: lastInlineText(descParagraph),
	}, true, ""
}

// nextSibling returns the nearest following sibling of n that satisfies match,
// or nil at the end of the sibling chain.
func nextSibling(n *html.Node, match func(*html.Node) bool) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if match(s) {
			return s
		}
	}
	return nil
}

func isElement(a atom.Atom) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == a
	}
}

// lastInlineText returns the trimmed text of the last child of p that has any
// text, ignoring trailing whitespace and comments.
func lastInlineText(p *html.Node) string {
	for c := p.LastChild; c != nil; c = c.PrevSibling {
		if c.Type == html.CommentNode {
			continue
		}
		text := strings.TrimSpace(goquery.NewDocumentFromNode(c).Text())
		if text != "" {
			return text
		}
	}
	return ""
}
