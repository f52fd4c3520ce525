package tui

import (
	"fmt"
	"strings"

	"github.com/rshade/calckit/internal/calc"
	"github.com/rshade/calckit/internal/registry"
	"github.com/rshade/calckit/internal/session"
)

// Column widths for the form and results panels.
const (
	fieldLabelWidth  = 28
	resultLabelWidth = 26
	minTruncateLen   = 3
)

// View renders the current screen.
func (m *CalculatorModel) View() string {
	switch m.mode {
	case ModeQuitting:
		return ""
	case ModePicking:
		return m.renderPicker()
	case ModeForm, ModeEditing:
	}
	return m.renderForm()
}

func (m *CalculatorModel) renderPicker() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Choose a calculator"))
	sb.WriteString("\n\n")
	sb.WriteString(m.filter.View())
	sb.WriteString("\n\n")
	if m.picker.Len() == 0 {
		sb.WriteString(mutedStyle.Render("No calculators match"))
	} else {
		sb.WriteString(m.picker.View())
	}
	sb.WriteString("\n\n")
	sb.WriteString(RenderPickerHelp())
	return sb.String()
}

func renderToolItem(d registry.ToolDescriptor, selected bool) string {
	marker := "  "
	style := valueStyle
	if selected {
		marker = IconFocused + " "
		style = highlightStyle
	}
	return marker + style.Render(fmt.Sprintf("%-*s", pickerTitleMaxWidth, truncate(d.Title, pickerTitleMaxWidth))) +
		" " + labelStyle.Render(d.Category)
}

func (m *CalculatorModel) renderForm() string {
	d := m.catalog.Resolve(m.snap.ToolID)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(d.Title))
	sb.WriteString("\n")
	if d.Description != "" {
		sb.WriteString(mutedStyle.Render(d.Description))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString(headerStyle.Render(d.FormTitle))
	sb.WriteString("\n")
	for i, f := range d.Fields {
		sb.WriteString(m.renderField(f, i))
		sb.WriteString("\n")
	}
	if m.err != nil {
		sb.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString(headerStyle.Render(d.ResultTitle))
	sb.WriteString("\n")
	sb.WriteString(RenderResults(m.snap, m.spinner.View()))
	sb.WriteString("\n\n")
	sb.WriteString(RenderFormHelp(m.mode == ModeEditing))
	return sb.String()
}

func (m *CalculatorModel) renderField(f registry.FieldSpec, index int) string {
	focused := index == m.focused
	marker := "  "
	if focused {
		marker = IconFocused + " "
		if m.mode == ModeEditing {
			marker = IconEditing + " "
		}
	}

	label := f.Label
	if f.Optional {
		label += " (optional)"
	}
	line := marker + labelStyle.Render(fmt.Sprintf("%-*s", fieldLabelWidth, truncate(label, fieldLabelWidth)))

	switch {
	case focused && m.mode == ModeEditing:
		line += m.input.View()
	case focused:
		line += highlightStyle.Render(m.snap.Inputs.Get(f.Key))
	default:
		line += valueStyle.Render(m.snap.Inputs.Get(f.Key))
	}
	if focused && len(f.Options) > 0 {
		line += "  " + mutedStyle.Render(strings.Join(f.Options, " | "))
	}
	return line
}

// RenderResults renders the results panel for a snapshot. spin is the
// spinner frame shown while Calculating.
func RenderResults(snap session.Snapshot, spin string) string {
	switch snap.State {
	case session.Calculating:
		return spin + " " + mutedStyle.Render("Calculating...")
	case session.Idle:
		if snap.Err != nil {
			return errorStyle.Render(snap.Err.Error())
		}
		return mutedStyle.Render("Press s to calculate")
	case session.Ready:
	}

	if snap.Err != nil {
		return errorStyle.Render(snap.Err.Error())
	}
	if calc.HasError(snap.Results) {
		return errorStyle.Render(snap.Results[0].Value)
	}

	var sb strings.Builder
	for i, r := range snap.Results {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(renderResultRow(r))
	}
	return sb.String()
}

func renderResultRow(r calc.ResultRow) string {
	label := fmt.Sprintf("%-*s", resultLabelWidth, truncate(r.Label, resultLabelWidth))
	if r.IsTotal {
		return IconTotal + " " + totalStyle.Render(label) + totalStyle.Render(r.Value)
	}
	return "  " + labelStyle.Render(label) + valueStyle.Render(r.Value)
}

// RenderPickerHelp renders the key hints for the picker.
func RenderPickerHelp() string {
	return mutedStyle.Render("type to filter · ↑/↓ move · enter select · esc back · ctrl+c quit")
}

// RenderFormHelp renders the key hints for the form.
func RenderFormHelp(editing bool) string {
	if editing {
		return mutedStyle.Render("enter save · esc cancel")
	}
	return mutedStyle.Render("↑/↓ move · enter edit · s calculate · r reset · t tools · q quit")
}

// truncate shortens s to maxLen runes with an ellipsis.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= minTruncateLen {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-minTruncateLen]) + "..."
}
