package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/readysetcloud/fitness-cli/pkg/catalog"
	"github.com/readysetcloud/fitness-cli/pkg/form"
	"github.com/readysetcloud/fitness-cli/pkg/models"
)

const sliderWidth = 30

func (m *SettingsFormModel) View() string {
	if m.exitConfirm.Active() {
		return ContentPaddingStyle.Render(m.exitConfirm.View())
	}

	width := m.width
	if width == 0 {
		width = DefaultCompactWidth
	}
	contentWidth := width - 8 // borders, padding, margins

	var content strings.Builder
	content.WriteString(renderHeader(width-4, "WORKOUT SETTINGS"))
	content.WriteString("\n\n")

	switch m.form.State() {
	case form.StateLoading:
		content.WriteString(m.spinner.View() + " Loading your settings...")
		content.WriteString("\n")
	case form.StateLoadFailed:
		content.WriteString(ErrorStyle.Render("Could not load your settings"))
		content.WriteString("\n\n")
		if err := m.form.LoadErr(); err != nil {
			content.WriteString(wordwrap.String(NormalStyle.Render(err.Error()), contentWidth))
			content.WriteString("\n\n")
		}
		content.WriteString(HintStyle.Render("Press r to retry or q to quit. Saving is disabled until settings load."))
		content.WriteString("\n")
	default:
		m.renderFields(&content, contentWidth)
	}

	var s strings.Builder
	s.WriteString(ContentPaddingStyle.Render(ActiveBorderStyle.
		Width(width - 4).
		Padding(0, 1).
		Render(content.String())))

	s.WriteString("\n")
	s.WriteString(ContentPaddingStyle.Render(InactiveBorderStyle.
		Width(width - 4).
		Padding(0, 1).
		Render(lipgloss.NewStyle().
			Width(contentWidth).
			Align(lipgloss.Right).
			Render(m.help.View(m.keys)))))

	return s.String()
}

func (m *SettingsFormModel) renderFields(b *strings.Builder, width int) {
	settings := m.form.Settings()

	m.renderLabel(b, fieldTargetTime, "TARGET TIME")
	b.WriteString(renderSlider(settings.TargetTime, m.focusIndex == fieldTargetTime))
	b.WriteString("\n\n")

	m.renderLabel(b, fieldDays, "WORKOUT DAYS")
	days := make([]string, len(models.Weekdays))
	flags := m.form.DayFlags()
	for i, d := range models.Weekdays {
		days[i] = m.renderToggle(fieldDays, i, d.Name, flags[i])
	}
	b.WriteString(wordwrap.String(strings.Join(days, "  "), width))
	b.WriteString("\n\n")

	m.renderLabel(b, fieldWorkoutTypes, "WORKOUT TYPES")
	b.WriteString(m.renderCatalogRow(fieldWorkoutTypes, m.catalog.WorkoutTypes, m.form.HasWorkoutType, width))
	b.WriteString("\n")
	if hint := m.focusedHint(); hint != "" {
		b.WriteString(HintStyle.Render(wordwrap.String(hint, width)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	m.renderLabel(b, fieldMuscleGroups, "MUSCLE GROUPS")
	b.WriteString(m.renderCatalogRow(fieldMuscleGroups, m.catalog.MuscleGroups, m.form.HasMuscleGroup, width))
	b.WriteString("\n\n")

	m.renderLabel(b, fieldEquipment, "EQUIPMENT")
	b.WriteString(m.renderCatalogRow(fieldEquipment, m.catalog.Equipment, m.form.HasEquipment, width))
	b.WriteString("\n\n")

	b.WriteString(m.renderSaveButton())
	b.WriteString("\n")
}

func (m *SettingsFormModel) renderLabel(b *strings.Builder, field int, label string) {
	if m.focusIndex == field {
		b.WriteString(FocusedStyle.Render("▸ ") + SectionStyle.Render(label))
	} else {
		b.WriteString("  " + SectionStyle.Render(label))
	}
	b.WriteString("\n")
}

func (m *SettingsFormModel) renderCatalogRow(field int, entries []catalog.Entry, has func(string) bool, width int) string {
	items := make([]string, len(entries))
	for i, e := range entries {
		items[i] = m.renderToggle(field, i, e.Label(), has(e.Value))
	}
	return wordwrap.String(strings.Join(items, "  "), width)
}

func (m *SettingsFormModel) renderToggle(field, index int, label string, checked bool) string {
	check := "[ ]"
	style := NormalStyle
	if checked {
		check = "[✓]"
		style = CheckedStyle
	}
	if m.focusIndex == field && m.cursors[field] == index {
		style = CursorStyle
	}
	// Non-breaking space keeps the box with its label when wrapping
	return style.Render(check + "\u00a0" + strings.ReplaceAll(label, " ", "\u00a0"))
}

func (m *SettingsFormModel) renderSaveButton() string {
	label := "Save"
	if m.saving {
		label = m.spinner.View() + " Saving"
	}

	style := ButtonStyle
	if m.focusIndex == fieldSave {
		style = FocusedButtonStyle
	}
	button := style.Render(label)

	if m.form.Dirty() {
		return lipgloss.JoinHorizontal(lipgloss.Center, button, "  ", DirtyStyle.Render("● unsaved changes"))
	}
	return button
}

// renderSlider draws the target time bar over the allowed range
func renderSlider(minutes int, focused bool) string {
	minutes = form.ClampTargetTime(minutes)
	span := models.MaxTargetTime - models.MinTargetTime
	pos := (minutes - models.MinTargetTime) * (sliderWidth - 1) / span

	bar := strings.Repeat("━", pos) + "●" + strings.Repeat("─", sliderWidth-1-pos)
	style := NormalStyle
	if focused {
		style = FocusedStyle
	}
	return fmt.Sprintf("%d %s %d   %s",
		models.MinTargetTime,
		style.Render(bar),
		models.MaxTargetTime,
		CheckedStyle.Render(fmt.Sprintf("%d min", minutes)))
}
