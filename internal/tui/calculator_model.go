package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/calckit/internal/registry"
	"github.com/rshade/calckit/internal/session"
	"github.com/rshade/calckit/internal/tui/picker"
)

// Mode is the part of the screen receiving keys.
type Mode int

const (
	// ModePicking shows the tool picker with its filter.
	ModePicking Mode = iota
	// ModeForm navigates the form fields.
	ModeForm
	// ModeEditing types into the focused field.
	ModeEditing
	// ModeQuitting is set once the program is exiting.
	ModeQuitting
)

// Default dimensions before the first WindowSizeMsg.
const (
	defaultWidth        = 80
	defaultHeight       = 24
	pickerChromeHeight  = 6
	filterCharLimit     = 40
	fieldCharLimit      = 256
	pickerTitleMaxWidth = 36
)

// resultMsg carries the outcome of a submit. ok is false when the commit was
// superseded before it became Ready.
type resultMsg struct {
	snap session.Snapshot
	ok   bool
}

// CalculatorModel is the Bubble Tea model for the interactive calculator.
type CalculatorModel struct {
	ctx     context.Context
	catalog *registry.Catalog
	calc    *session.Calculator

	picker  *picker.Model[registry.ToolDescriptor]
	filter  textinput.Model
	input   textinput.Model
	spinner spinner.Model

	mode    Mode
	focused int
	snap    session.Snapshot
	err     error

	width  int
	height int
}

// NewCalculatorModel creates the model around an existing session. A session
// on a catalogued tool opens on its form; anything else opens the picker.
func NewCalculatorModel(ctx context.Context, catalog *registry.Catalog, calc *session.Calculator) *CalculatorModel {
	filter := textinput.New()
	filter.Placeholder = "filter calculators"
	filter.CharLimit = filterCharLimit

	input := textinput.New()
	input.CharLimit = fieldCharLimit

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = highlightStyle

	m := &CalculatorModel{
		ctx:     ctx,
		catalog: catalog,
		calc:    calc,
		filter:  filter,
		input:   input,
		spinner: sp,
		width:   defaultWidth,
		height:  defaultHeight,
	}
	m.picker = picker.New(catalog.List(), defaultHeight-pickerChromeHeight, defaultWidth, renderToolItem, matchTool)
	m.snap = calc.Snapshot()

	if _, err := catalog.Lookup(m.snap.ToolID); err == nil {
		m.mode = ModeForm
	} else {
		m.openPicker()
	}
	return m
}

func matchTool(d registry.ToolDescriptor, query string) bool {
	return strings.Contains(strings.ToLower(d.Title), query) ||
		strings.Contains(d.ID, query) ||
		strings.Contains(strings.ToLower(d.Category), query)
}

// Init implements tea.Model.
func (m *CalculatorModel) Init() tea.Cmd {
	if m.mode == ModePicking {
		return textinput.Blink
	}
	return nil
}

// Update handles messages and updates the model state.
func (m *CalculatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.picker.SetSize(msg.Width, max(1, msg.Height-pickerChromeHeight))
		return m, nil

	case spinner.TickMsg:
		if m.snap.State != session.Calculating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case resultMsg:
		if msg.ok {
			m.snap = msg.snap
		} else {
			m.snap = m.calc.Snapshot()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}
		switch m.mode {
		case ModePicking:
			return m.handlePickerKey(msg)
		case ModeEditing:
			return m.handleEditKey(msg)
		case ModeForm:
			return m.handleFormKey(msg)
		case ModeQuitting:
			return m, nil
		}
	}

	return m, nil
}

func (m *CalculatorModel) quit() (tea.Model, tea.Cmd) {
	m.mode = ModeQuitting
	m.calc.Close()
	return m, tea.Quit
}

func (m *CalculatorModel) openPicker() {
	m.mode = ModePicking
	m.filter.SetValue("")
	m.filter.Focus()
	m.picker.SetFilter("")
}

//nolint:exhaustive // Only picker keys are handled; the rest go to the filter.
func (m *CalculatorModel) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filter.Blur()
		if _, err := m.catalog.Lookup(m.snap.ToolID); err != nil {
			return m.quit()
		}
		m.mode = ModeForm
		return m, nil

	case tea.KeyEnter:
		d, ok := m.picker.Selected()
		if !ok {
			return m, nil
		}
		if err := m.calc.SetTool(d.ID); err != nil {
			m.err = err
			return m, nil
		}
		m.filter.Blur()
		m.err = nil
		m.focused = 0
		m.mode = ModeForm
		m.snap = m.calc.Snapshot()
		return m, nil

	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown, tea.KeyTab, tea.KeyShiftTab:
		m.picker.Update(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.picker.SetFilter(m.filter.Value())
	return m, cmd
}

//nolint:exhaustive // Only form navigation keys are handled.
func (m *CalculatorModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fields := m.fields()

	switch msg.Type {
	case tea.KeyUp, tea.KeyShiftTab:
		if m.focused > 0 {
			m.focused--
		}
		return m, nil

	case tea.KeyDown, tea.KeyTab:
		if m.focused < len(fields)-1 {
			m.focused++
		}
		return m, nil

	case tea.KeyEnter:
		if m.focused < len(fields) {
			m.mode = ModeEditing
			m.input.SetValue(m.snap.Inputs.Get(fields[m.focused].Key))
			m.input.CursorEnd()
			return m, m.input.Focus()
		}
		return m, nil

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			return m.quit()
		case "k":
			return m.handleFormKey(tea.KeyMsg{Type: tea.KeyUp})
		case "j":
			return m.handleFormKey(tea.KeyMsg{Type: tea.KeyDown})
		case "s", "=":
			return m, m.submit()
		case "t", "/":
			m.openPicker()
			return m, textinput.Blink
		case "r":
			if err := m.calc.SetTool(m.snap.ToolID); err != nil {
				m.err = err
			}
			m.snap = m.calc.Snapshot()
			return m, nil
		}
	}

	return m, nil
}

//nolint:exhaustive // Keys other than commit and cancel go to the text input.
func (m *CalculatorModel) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		fields := m.fields()
		if m.focused < len(fields) {
			m.err = m.calc.SetField(fields[m.focused].Key, m.input.Value())
		}
		m.input.Blur()
		m.mode = ModeForm
		m.snap = m.calc.Snapshot()
		return m, nil

	case tea.KeyEsc:
		m.input.Blur()
		m.mode = ModeForm
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit starts a calculation and waits for its commit.
func (m *CalculatorModel) submit() tea.Cmd {
	ch := m.calc.Submit(m.ctx)
	m.snap = m.calc.Snapshot()
	m.err = nil
	return tea.Batch(m.spinner.Tick, waitForResult(ch))
}

func waitForResult(ch <-chan session.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-ch
		return resultMsg{snap: snap, ok: ok}
	}
}

// fields returns the form of the current tool.
func (m *CalculatorModel) fields() []registry.FieldSpec {
	return m.catalog.Resolve(m.snap.ToolID).Fields
}

// Mode returns the active mode.
func (m *CalculatorModel) Mode() Mode {
	return m.mode
}

// Snapshot returns the session state the model last rendered.
func (m *CalculatorModel) Snapshot() session.Snapshot {
	return m.snap
}

// Focused returns the index of the focused form field.
func (m *CalculatorModel) Focused() int {
	return m.focused
}
