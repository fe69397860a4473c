package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tripmate/internal/emergency"
)

func (m *Model) updateEmergency(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "i":
		m.ctrl.Emergency.FetchInfo(m.ctx)
	case "c":
		if err := m.ctrl.Emergency.Call(); err != nil {
			m.status = "Could not place the call."
		}
	case "1", "2", "3", "4", "5":
		idx := int(key[0] - '1')
		if idx < len(emergency.Phrases) {
			m.ctrl.Emergency.TranslatePhrase(m.ctx, emergency.Phrases[idx])
		}
	}
	return m, nil
}

func (m *Model) viewEmergency() string {
	st := m.ctrl.Emergency.Snapshot()

	var b strings.Builder
	b.WriteString(m.styles.Emergency.Render("Emergency"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Emergency.Render("c: call the travel assistance helpline"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Header.Render("Local numbers"))
	b.WriteString("\n")
	switch {
	case st.LoadingInfo:
		b.WriteString(m.loading("Fetching local emergency info..."))
	case st.Info != nil:
		card := fmt.Sprintf(
			"Police     %s\nAmbulance  %s\nFire       %s\n\n%s\n%s",
			st.Info.Police, st.Info.Ambulance, st.Info.Fire,
			m.styles.CardTitle.Render(st.Info.HospitalName),
			m.styles.Muted.Render(st.Info.HospitalAddress))
		b.WriteString(m.styles.Card.Render(card))
	case st.InfoErr != "":
		b.WriteString(m.styles.Error.Render(st.InfoErr))
	default:
		b.WriteString(m.styles.Muted.Render("Press i to fetch numbers for your location."))
	}
	b.WriteString("\n\n")

	b.WriteString(m.styles.Header.Render("Phrasebook"))
	b.WriteString("\n")
	for i, phrase := range emergency.Phrases {
		b.WriteString(fmt.Sprintf("%s %s\n", m.styles.Accent.Render(fmt.Sprintf("%d.", i+1)), phrase))
	}
	switch {
	case st.Translating:
		b.WriteString("\n" + m.loading("Translating..."))
	case st.TranslatedPhrase != "":
		b.WriteString("\n" + m.styles.Card.Render(st.TranslatedPhrase))
	}

	return b.String()
}
