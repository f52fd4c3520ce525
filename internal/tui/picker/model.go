package picker

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// halfViewportDivisor centers the selection in the viewport.
const halfViewportDivisor = 2

// RenderFunc renders one item. selected marks the highlighted row.
type RenderFunc[T any] func(item T, selected bool) string

// MatchFunc reports whether item matches a lower-cased filter query.
type MatchFunc[T any] func(item T, query string) bool

// Model is a filterable list. The zero value is not usable; call New.
type Model[T any] struct {
	items   []T
	visible []int

	render RenderFunc[T]
	match  MatchFunc[T]
	query  string

	// selected indexes visible, not items.
	selected    int
	visibleFrom int
	visibleTo   int

	height int
	width  int
}

// New creates a picker over items. A nil match accepts every item.
func New[T any](items []T, height, width int, render RenderFunc[T], match MatchFunc[T]) *Model[T] {
	m := &Model[T]{
		items:  items,
		render: render,
		match:  match,
		height: max(1, height),
		width:  width,
	}
	m.applyFilter()
	return m
}

// Init implements tea.Model.
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys and resizes.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}
	return m, nil
}

//nolint:exhaustive // Only navigation keys are handled.
func (m *Model[T]) handleKey(msg tea.KeyMsg) {
	if len(m.visible) == 0 {
		return
	}
	switch msg.Type {
	case tea.KeyUp, tea.KeyShiftTab:
		m.move(-1)
	case tea.KeyDown, tea.KeyTab:
		m.move(1)
	case tea.KeyPgUp:
		m.move(-m.height)
	case tea.KeyPgDown:
		m.move(m.height)
	case tea.KeyHome:
		m.SetSelected(0)
	case tea.KeyEnd:
		m.SetSelected(len(m.visible) - 1)
	}
}

func (m *Model[T]) move(delta int) {
	m.SetSelected(m.selected + delta)
}

// SetFilter narrows the list to items matching query and resets the
// selection to the first match.
func (m *Model[T]) SetFilter(query string) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == m.query {
		return
	}
	m.query = query
	m.applyFilter()
}

// Filter returns the active query.
func (m *Model[T]) Filter() string {
	return m.query
}

func (m *Model[T]) applyFilter() {
	m.visible = m.visible[:0]
	for i, item := range m.items {
		if m.query == "" || m.match == nil || m.match(item, m.query) {
			m.visible = append(m.visible, i)
		}
	}
	m.selected = 0
	m.updateVisibleRange()
}

// SetSize changes the viewport.
func (m *Model[T]) SetSize(width, height int) {
	m.width = width
	m.height = max(1, height)
	m.updateVisibleRange()
}

// SetSelected moves the selection, clamped to the filtered items.
func (m *Model[T]) SetSelected(index int) {
	switch {
	case len(m.visible) == 0 || index < 0:
		m.selected = 0
	case index >= len(m.visible):
		m.selected = len(m.visible) - 1
	default:
		m.selected = index
	}
	m.updateVisibleRange()
}

// updateVisibleRange keeps the selection centered where the list allows.
func (m *Model[T]) updateVisibleRange() {
	n := len(m.visible)
	if n == 0 {
		m.visibleFrom, m.visibleTo = 0, 0
		return
	}
	from := m.selected - m.height/halfViewportDivisor
	from = max(0, min(from, n-m.height))
	m.visibleFrom = from
	m.visibleTo = min(n, from+m.height)
}

// View renders the rows inside the viewport.
func (m *Model[T]) View() string {
	if len(m.visible) == 0 {
		return ""
	}
	lines := make([]string, 0, m.visibleTo-m.visibleFrom)
	for i := m.visibleFrom; i < m.visibleTo; i++ {
		lines = append(lines, m.render(m.items[m.visible[i]], i == m.selected))
	}
	return strings.Join(lines, "\n")
}

// Len returns the number of items passing the filter.
func (m *Model[T]) Len() int {
	return len(m.visible)
}

// Selected returns the highlighted item.
func (m *Model[T]) Selected() (T, bool) {
	if len(m.visible) == 0 {
		var zero T
		return zero, false
	}
	return m.items[m.visible[m.selected]], true
}

// Index returns the selection position within the filtered items.
func (m *Model[T]) Index() int {
	return m.selected
}

// VisibleRange returns the filtered positions currently in the viewport.
func (m *Model[T]) VisibleRange() (from, to int) {
	return m.visibleFrom, m.visibleTo
}
