// Package wizard implements the interactive channel, language and component
// selection for vsl.
package wizard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/conn-castle/vs-layout/internal/catalog"
	"github.com/conn-castle/vs-layout/internal/messages"
)

var (
	// ErrCancelled reports that the user pressed Ctrl+C or backed out of
	// the first step.
	ErrCancelled = errors.New("selection cancelled")
	errBack      = errors.New("selection back requested")
)

// ChooseChannel asks for one of channels. current preselects a channel by
// list position (0-based); an out of range value selects the first.
func ChooseChannel(ui UI, channels []catalog.Channel, current int) (catalog.Channel, error) {
	if len(channels) == 0 {
		return catalog.Channel{}, errors.New(messages.SessionChannelRequired)
	}
	options := make([]Option, len(channels))
	for i, ch := range channels {
		label := ch.DisplayName()
		if id := ch.ID(); id != "" && id != label {
			label = fmt.Sprintf("%s (%s)", label, id)
		}
		options[i] = Option{Label: label, Value: strconv.Itoa(i)}
	}
	if current < 0 || current >= len(channels) {
		current = 0
	}
	value := strconv.Itoa(current)
	if err := ui.Select(messages.PromptChannel, options, &value); err != nil {
		return catalog.Channel{}, cancelOnBack(err)
	}
	index, err := strconv.Atoi(value)
	if err != nil || index < 0 || index >= len(channels) {
		return catalog.Channel{}, errors.New(messages.SessionChannelRequired)
	}
	return channels[index], nil
}

// ConfirmReset asks whether to empty a non-empty download folder.
func ConfirmReset(ui UI, folder string) (bool, error) {
	reset := false
	if err := ui.Confirm(fmt.Sprintf(messages.PromptResetFolderFmt, folder), &reset); err != nil {
		return false, cancelOnBack(err)
	}
	return reset, nil
}

// ShowSelection displays the chosen languages and components before the
// installer starts. Esc or Ctrl+C cancels.
func ShowSelection(ui UI, languages []string, ids []string) error {
	langs := messages.PromptSelectionNone
	if len(languages) > 0 {
		langs = strings.Join(languages, ", ")
	}
	body := fmt.Sprintf(messages.PromptSelectionBodyFmt, langs, strings.Join(ids, "\n"))
	return cancelOnBack(ui.Note(messages.PromptSelectionTitle, body))
}

// selectionStep is one screen of ChooseSelection.
type selectionStep func(ui UI, state *selectionState) error

type selectionState struct {
	components []catalog.Component
	languages  []string
}

// selectionSnapshot records the Selected flags in tree order so that a
// repeated id restores at the right position.
type selectionSnapshot struct {
	marks     []bool
	languages []string
}

func (s *selectionState) snapshot() selectionSnapshot {
	var marks []bool
	for _, c := range s.components {
		marks = append(marks, c.Selected)
		for _, child := range c.Children {
			marks = append(marks, child.Selected)
		}
	}
	return selectionSnapshot{marks: marks, languages: append([]string(nil), s.languages...)}
}

func (s *selectionState) restore(snap selectionSnapshot) {
	next := 0
	for i := range s.components {
		s.components[i].Selected = snap.marks[next]
		next++
		for j := range s.components[i].Children {
			s.components[i].Children[j].Selected = snap.marks[next]
			next++
		}
	}
	s.languages = snap.languages
}

// ChooseSelection walks the user through languages, top-level workloads and
// each component group. Current selections are preselected. components is
// updated in place; the chosen language keys are returned in list order.
// Esc returns to the previous step; Esc on the first step cancels.
func ChooseSelection(ui UI, components []catalog.Component, languages []catalog.Language, preselected []string) ([]string, error) {
	state := &selectionState{components: components, languages: append([]string(nil), preselected...)}
	steps := []selectionStep{languageStep(languages)}
	if hasTopLevelLeaves(components) {
		steps = append(steps, workloadStep)
	}
	for i := range components {
		if len(components[i].Children) > 0 {
			steps = append(steps, groupStep(i))
		}
	}

	step := 0
	for step < len(steps) {
		snap := state.snapshot()
		err := steps[step](ui, state)
		if err == nil {
			step++
			continue
		}
		if !errors.Is(err, errBack) {
			return nil, err
		}
		state.restore(snap)
		if step == 0 {
			return nil, ErrCancelled
		}
		step--
	}
	return state.languages, nil
}

func languageStep(languages []catalog.Language) selectionStep {
	return func(ui UI, state *selectionState) error {
		options := make([]Option, len(languages))
		for i, lang := range languages {
			options[i] = Option{Label: fmt.Sprintf("%s (%s)", lang.Title, lang.Key), Value: lang.Key}
		}
		selected := normalizeLanguages(languages, state.languages)
		if err := ui.MultiSelect(messages.PromptLanguages, options, &selected); err != nil {
			return err
		}
		state.languages = normalizeLanguages(languages, selected)
		return nil
	}
}

func workloadStep(ui UI, state *selectionState) error {
	var options []Option
	var selected []string
	for _, c := range state.components {
		if c.IsGroup() {
			continue
		}
		options = append(options, leafOption(c))
		if c.Selected {
			selected = append(selected, c.ID)
		}
	}
	if err := ui.MultiSelect(messages.PromptWorkloads, options, &selected); err != nil {
		return err
	}
	chosen := toSet(selected)
	for i := range state.components {
		if !state.components[i].IsGroup() {
			state.components[i].Selected = chosen[state.components[i].ID]
		}
	}
	return nil
}

func groupStep(index int) selectionStep {
	return func(ui UI, state *selectionState) error {
		group := &state.components[index]
		options := make([]Option, len(group.Children))
		var selected []string
		for i, c := range group.Children {
			options[i] = leafOption(c)
			if c.Selected {
				selected = append(selected, c.ID)
			}
		}
		if err := ui.MultiSelect(group.Title, options, &selected); err != nil {
			return err
		}
		chosen := toSet(selected)
		for i := range group.Children {
			group.Children[i].Selected = chosen[group.Children[i].ID]
		}
		return nil
	}
}

func leafOption(c catalog.Component) Option {
	label := c.Title
	if c.Title != c.ID {
		label = fmt.Sprintf("%s  %s", c.Title, c.ID)
	}
	return Option{Label: label, Value: c.ID}
}

func hasTopLevelLeaves(components []catalog.Component) bool {
	for _, c := range components {
		if !c.IsGroup() {
			return true
		}
	}
	return false
}

// normalizeLanguages maps keys to canonical language keys in list order,
// dropping unknown keys and duplicates.
func normalizeLanguages(languages []catalog.Language, keys []string) []string {
	want := make(map[string]bool, len(keys))
	for _, key := range keys {
		if lang, ok := catalog.FindLanguage(languages, key); ok {
			want[lang.Key] = true
		}
	}
	var out []string
	for _, lang := range languages {
		if want[lang.Key] {
			out = append(out, lang.Key)
		}
	}
	return out
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// cancelOnBack maps Esc on a single-screen prompt to ErrCancelled.
func cancelOnBack(err error) error {
	if errors.Is(err, errBack) {
		return ErrCancelled
	}
	return err
}
