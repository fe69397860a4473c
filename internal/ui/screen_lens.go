package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tripmate/internal/logging"
	"tripmate/internal/media"
)

func (m *Model) updateLens(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.submitLens()
		return m, nil
	case "ctrl+x":
		m.ctrl.Lens.SetImage("", nil)
		return m, nil
	}

	var cmd tea.Cmd
	m.lensInput, cmd = m.lensInput.Update(msg)
	return m, cmd
}

// submitLens treats the input as an image path until one is attached,
// then as the question to ask about it.
func (m *Model) submitLens() {
	text := strings.TrimSpace(m.lensInput.Value())

	if m.ctrl.Lens.Snapshot().ImagePath == "" {
		if text == "" {
			return
		}
		m.setLensImage(text)
		m.lensInput.Reset()
		return
	}

	if m.ctrl.Lens.Analyze(m.ctx, text) {
		m.lensInput.Reset()
	}
}

func (m *Model) setLensImage(path string) {
	part, _, err := media.ImagePart(path)
	if err != nil {
		logging.Warn("lens image load failed", "path", path, "error", err)
		m.status = fmt.Sprintf("Could not load %s", filepath.Base(path))
		return
	}
	m.ctrl.Lens.SetImage(path, part)
}

func (m *Model) viewLens() string {
	st := m.ctrl.Lens.Snapshot()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Lens"))
	b.WriteString("\n\n")

	if st.ImagePath != "" {
		b.WriteString(m.styles.Accent.Render(
			fmt.Sprintf("Image: %s (ctrl+x to clear)", filepath.Base(st.ImagePath))))
		b.WriteString("\n\n")
	}

	switch {
	case st.Loading:
		b.WriteString(m.loading("Analyzing image..."))
	case st.Analysis != "":
		b.WriteString(m.markdown(st.Analysis))
	case st.Err != "":
		b.WriteString(m.styles.Error.Render(st.Err))
	}
	b.WriteString("\n\n")

	if st.ImagePath == "" {
		m.lensInput.Placeholder = "Path to an image (or drop one into the watch folder)"
	} else {
		m.lensInput.Placeholder = "Ask about this image, or press enter for an overview"
	}
	b.WriteString(m.lensInput.View())

	return b.String()
}
