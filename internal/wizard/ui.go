package wizard

import (
	"errors"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/conn-castle/vs-layout/internal/messages"
	"github.com/conn-castle/vs-layout/internal/terminal"
)

// multiSelectHeight caps the visible rows of long component lists.
const multiSelectHeight = 18

// Option is one selectable entry. Label is displayed; Value is returned.
type Option struct {
	Label string
	Value string
}

// UI defines the interaction methods.
type UI interface {
	Select(title string, options []Option, current *string) error
	MultiSelect(title string, options []Option, selected *[]string) error
	Confirm(title string, value *bool) error
	Note(title string, body string) error
}

// HuhUI implements UI using charmbracelet/huh.
type HuhUI struct {
	isTerminal func() bool
	ctrlCAbort bool // set by key filter during form.Run(); reset before each form
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhUI creates a new HuhUI using terminal.IsInteractive.
func NewHuhUI() *HuhUI {
	return &HuhUI{isTerminal: terminal.IsInteractive}
}

// ensureInteractive returns an error when the UI is invoked without a terminal.
func (ui *HuhUI) ensureInteractive() error {
	checker := ui.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	if checker() {
		return nil
	}
	return errors.New(messages.WizardRequiresTerminal)
}

// wizardKeyMap returns the keymap for selection forms: Esc aborts to the
// previous step and Ctrl+C cancels. The field-level Prev and Next bindings
// are display-only hints because the form intercepts both keys first.
func wizardKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()

	// Both keys abort the form; runForm tells them apart via ctrlCAbort.
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"))

	escBack := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back"))
	km.MultiSelect.Prev = escBack
	km.Select.Prev = escBack
	km.Confirm.Prev = escBack
	km.Note.Prev = escBack

	ctrlCExit := key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "exit"))
	km.MultiSelect.Next = ctrlCExit
	km.Select.Next = ctrlCExit
	km.Confirm.Next = ctrlCExit
	km.Note.Next = ctrlCExit

	// Filter mode would swallow Esc before the form sees it.
	km.Select.Filter.SetEnabled(false)
	km.Select.SetFilter.SetEnabled(false)
	km.Select.ClearFilter.SetEnabled(false)
	km.MultiSelect.Filter.SetEnabled(false)
	km.MultiSelect.SetFilter.SetEnabled(false)
	km.MultiSelect.ClearFilter.SetEnabled(false)

	return km
}

// hintField keeps the Prev/Next hint bindings visible. huh calls
// WithPosition on every key message, which disables Prev on the first field
// and Next on the last; every form here has a single field.
type hintField struct {
	huh.Field
	km *huh.KeyMap
}

// Update delegates to the inner field and keeps the wrapper in the group.
func (f *hintField) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := f.Field.Update(msg)
	if field, ok := model.(huh.Field); ok {
		f.Field = field
	}
	return f, cmd
}

// WithPosition lets huh set positional state, then restores the hint bindings.
func (f *hintField) WithPosition(p huh.FieldPosition) huh.Field {
	f.Field.WithPosition(p)
	f.WithKeyMap(f.km)
	return f
}

func newHintField(field huh.Field) huh.Field {
	return &hintField{Field: field, km: wizardKeyMap()}
}

// formFilter records Ctrl+C key presses and turns InterruptMsg into QuitMsg
// so bubbletea clears the form on the way out. A SIGINT from outside the
// terminal arrives without a key message and maps to back.
func (ui *HuhUI) formFilter() func(tea.Model, tea.Msg) tea.Msg {
	return func(_ tea.Model, msg tea.Msg) tea.Msg {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyCtrlC {
			ui.ctrlCAbort = true
		}
		if _, ok := msg.(tea.InterruptMsg); ok {
			return tea.QuitMsg{}
		}
		return msg
	}
}

// runForm runs form on stderr. Esc returns errBack; Ctrl+C returns ErrCancelled.
func (ui *HuhUI) runForm(form *huh.Form) error {
	if err := ui.ensureInteractive(); err != nil {
		return err
	}

	ui.ctrlCAbort = false
	form.WithKeyMap(wizardKeyMap())
	form.WithProgramOptions(
		tea.WithOutput(os.Stderr),
		tea.WithReportFocus(),
		tea.WithFilter(ui.formFilter()),
	)

	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		if ui.ctrlCAbort {
			return ErrCancelled
		}
		return errBack
	}
	return err
}

func huhOptions(options []Option) []huh.Option[string] {
	opts := make([]huh.Option[string], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o.Label, o.Value)
	}
	return opts
}

// Select renders a single-choice prompt.
func (ui *HuhUI) Select(title string, options []Option, current *string) error {
	return ui.runForm(huh.NewForm(
		huh.NewGroup(
			newHintField(huh.NewSelect[string]().
				Title(title).
				Options(huhOptions(options)...).
				Value(current)),
		),
	))
}

// MultiSelect renders a multi-choice prompt. Values already in selected
// start checked.
func (ui *HuhUI) MultiSelect(title string, options []Option, selected *[]string) error {
	field := huh.NewMultiSelect[string]().
		Title(title).
		Filterable(false).
		Options(huhOptions(options)...).
		Value(selected)
	if len(options) > multiSelectHeight {
		field = field.Height(multiSelectHeight)
	}
	return ui.runForm(huh.NewForm(huh.NewGroup(newHintField(field))))
}

// Confirm renders a yes/no prompt.
func (ui *HuhUI) Confirm(title string, value *bool) error {
	return ui.runForm(huh.NewForm(
		huh.NewGroup(
			newHintField(huh.NewConfirm().
				Title(title).
				Value(value)),
		),
	))
}

// Note renders an informational note screen.
func (ui *HuhUI) Note(title string, body string) error {
	return ui.runForm(huh.NewForm(
		huh.NewGroup(
			newHintField(huh.NewNote().
				Title(title).
				Description(body)),
		),
	))
}
