package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tripmate/internal/chat"
	"tripmate/internal/logging"
	"tripmate/internal/media"
)

const attachPrefix = "/attach "

func (m *Model) updateAssistant(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.submitChat()
		return m, nil
	case "ctrl+x":
		m.clearChatImage()
		return m, nil
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

func (m *Model) submitChat() {
	text := strings.TrimSpace(m.chatInput.Value())

	if strings.HasPrefix(text, attachPrefix) {
		m.attachChatImage(strings.TrimSpace(strings.TrimPrefix(text, attachPrefix)))
		m.chatInput.Reset()
		return
	}

	if m.ctrl.Chat.Send(m.ctx, text, m.chatImagePart, m.chatImageURI) {
		m.chatInput.Reset()
		m.clearChatImage()
	}
}

// attachChatImage loads an image for the next message. A load failure
// surfaces on the status line and leaves any prior attachment in place.
func (m *Model) attachChatImage(path string) {
	part, uri, err := media.ImagePart(path)
	if err != nil {
		logging.Warn("chat image attach failed", "path", path, "error", err)
		m.status = fmt.Sprintf("Could not attach %s", filepath.Base(path))
		return
	}
	m.chatImagePart = part
	m.chatImageURI = uri
	m.chatImagePath = path
	m.status = fmt.Sprintf("Attached %s", filepath.Base(path))
}

func (m *Model) clearChatImage() {
	m.chatImagePart = nil
	m.chatImageURI = ""
	m.chatImagePath = ""
}

func (m *Model) viewAssistant() string {
	var b strings.Builder

	for _, msg := range m.ctrl.Chat.Session().Transcript() {
		switch msg.Role {
		case chat.RoleUser:
			b.WriteString(m.styles.UserMsg.Render("You: " + msg.Text))
			if msg.Image != "" {
				b.WriteString(m.styles.Muted.Render("  [image]"))
			}
		case chat.RoleModel:
			if msg.Text == "" {
				b.WriteString(m.loading("Thinking..."))
			} else {
				b.WriteString(m.markdown(msg.Text))
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.chatImagePath != "" {
		b.WriteString(m.styles.Accent.Render(
			fmt.Sprintf("Attachment: %s (ctrl+x to remove)", filepath.Base(m.chatImagePath))))
		b.WriteString("\n")
	}
	b.WriteString(m.chatInput.View())
	b.WriteString("\n" + m.styles.Muted.Render("enter: send • /attach <path>: add an image"))

	return b.String()
}
