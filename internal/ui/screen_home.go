package ui

import (
	"fmt"
	"strings"
)

// viewHome renders the location status and the local travel summary.
func (m *Model) viewHome() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("TripMate"))
	b.WriteString("\n\n")

	loc := m.ctrl.Location.Current()
	switch {
	case loc.Loading:
		b.WriteString(m.loading("Acquiring location..."))
	case loc.Location == nil:
		b.WriteString(m.styles.Warning.Render("Location unavailable."))
		if loc.Err != nil {
			b.WriteString("\n" + m.styles.Muted.Render(loc.Err.Error()))
		}
	default:
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf(
			"Location: %.4f, %.4f", loc.Location.Latitude, loc.Location.Longitude)))
	}
	b.WriteString("\n\n")

	st := m.ctrl.Home.Snapshot()
	switch {
	case st.Loading:
		b.WriteString(m.loading("Loading local travel info..."))
	case st.Unavailable:
		b.WriteString(m.styles.Warning.Render("Local travel info is unavailable without a location."))
	case st.Err != "":
		b.WriteString(m.styles.Error.Render(st.Err))
	case st.Data != nil:
		card := fmt.Sprintf("%s\n\nWeather\n%s\n\nTip\n%s",
			m.styles.CardTitle.Render(st.Data.City),
			st.Data.Weather,
			st.Data.Tip)
		b.WriteString(m.styles.Card.Render(card))
	}

	return b.String()
}
