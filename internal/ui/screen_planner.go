package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) updatePlanner(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.ctrl.Planner.Generate(m.ctx, m.plannerInput.Value()) {
			m.plannerInput.Reset()
		}
		return m, nil
	case "ctrl+r":
		m.ctrl.Planner.Reset()
		return m, nil
	case "ctrl+y":
		if img := m.ctrl.Planner.Snapshot().SummaryImage; img != "" {
			if err := clipboard.WriteAll(img); err == nil {
				m.status = "Summary image copied to clipboard."
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.plannerInput, cmd = m.plannerInput.Update(msg)
	return m, cmd
}

func (m *Model) viewPlanner() string {
	st := m.ctrl.Planner.Snapshot()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Day Planner"))
	b.WriteString("\n\n")

	switch {
	case st.Loading:
		b.WriteString(m.loading("Planning your day..."))

	case st.Plan != nil:
		var card strings.Builder
		card.WriteString(m.styles.CardTitle.Render(st.Plan.Title))
		for _, a := range st.Plan.Activities {
			card.WriteString(fmt.Sprintf("\n\n%s  %s\n%s",
				m.styles.Accent.Render(a.Time), a.Description,
				m.styles.Muted.Render(a.Details)))
		}
		b.WriteString(m.styles.Card.Render(card.String()))
		b.WriteString("\n\n")

		switch {
		case st.GeneratingImage:
			b.WriteString(m.loading("Generating a visual summary..."))
		case st.SummaryImage != "":
			b.WriteString(m.styles.Status.Render("Visual summary ready. ctrl+y: copy image data"))
		}
		b.WriteString("\n" + m.styles.Muted.Render("ctrl+r: plan a new day"))

	default:
		b.WriteString("What would you like to do today?\n\n")
		b.WriteString(m.plannerInput.View())
		b.WriteString("\n" + m.styles.Muted.Render("enter: generate a plan"))
		if st.Err != "" {
			b.WriteString("\n\n" + m.styles.Error.Render(st.Err))
		}
	}

	return b.String()
}
