package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"tripmate/internal/request"
	"tripmate/internal/translator"
)

func (m *Model) updateTranslator(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.ctrl.Translator.Snapshot()

	switch msg.String() {
	case "enter":
		if st.Mode == translator.ModeVoice {
			m.ctrl.Translator.ToggleListening(m.ctx)
			return m, nil
		}
		if m.ctrl.Translator.Translate(m.ctx, m.translatorInput.Value()) {
			m.translatorInput.Reset()
		}
		return m, nil

	case "ctrl+v":
		if st.Mode == translator.ModeText {
			m.ctrl.Translator.SetMode(translator.ModeVoice)
		} else {
			m.ctrl.Translator.SetMode(translator.ModeText)
		}
		return m, nil

	case "ctrl+l":
		m.languageIndex = (m.languageIndex + 1) % len(translator.Languages)
		m.ctrl.Translator.SetTargetLanguage(translator.Languages[m.languageIndex])
		return m, nil

	case "ctrl+t":
		if st.Style == request.StyleFormal {
			m.ctrl.Translator.SetStyle(request.StyleInformal)
		} else {
			m.ctrl.Translator.SetStyle(request.StyleFormal)
		}
		return m, nil

	case "ctrl+s":
		text := st.TranslatedText
		if st.Mode == translator.ModeVoice {
			text = st.VoiceTranslated
		}
		m.ctrl.Translator.Speak(m.ctx, text)
		return m, nil

	case "ctrl+y":
		text := st.TranslatedText
		if st.Mode == translator.ModeVoice {
			text = st.VoiceTranslated
		}
		if text != "" {
			if err := clipboard.WriteAll(text); err == nil {
				m.status = "Translation copied to clipboard."
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.translatorInput, cmd = m.translatorInput.Update(msg)
	return m, cmd
}

func (m *Model) viewTranslator() string {
	st := m.ctrl.Translator.Snapshot()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Translator"))
	b.WriteString("  ")
	b.WriteString(m.styles.Accent.Render(fmt.Sprintf("-> %s (%s)", st.TargetLanguage, st.Style)))
	b.WriteString("\n\n")

	if st.Mode == translator.ModeVoice {
		m.viewVoiceTranslator(&b, st)
	} else {
		m.viewTextTranslator(&b, st)
	}

	b.WriteString("\n\n" + m.styles.Muted.Render(
		"ctrl+l: language • ctrl+t: tone • ctrl+v: text/voice • ctrl+s: speak • ctrl+y: copy"))
	return b.String()
}

func (m *Model) viewTextTranslator(b *strings.Builder, st translator.State) {
	b.WriteString(m.translatorInput.View())
	b.WriteString("\n\n")

	switch {
	case st.Loading:
		b.WriteString(m.loading("Translating..."))
	case st.Err != "":
		b.WriteString(m.styles.Error.Render(st.Err))
	case st.TranslatedText != "":
		b.WriteString(m.styles.Card.Render(st.TranslatedText))
		if st.Speaking {
			b.WriteString("\n" + m.loading("Speaking..."))
		} else if st.AudioCached {
			b.WriteString("\n" + m.styles.Muted.Render("Audio ready."))
		}
	}
}

func (m *Model) viewVoiceTranslator(b *strings.Builder, st translator.State) {
	if !st.SpeechSupported {
		b.WriteString(m.styles.Warning.Render(st.SpeechErr))
		return
	}

	if st.Listening {
		b.WriteString(m.loading("Listening... press enter to stop"))
	} else {
		b.WriteString(m.styles.Muted.Render("Press enter and speak."))
	}
	b.WriteString("\n\n")

	if st.Transcript != "" {
		b.WriteString(m.styles.UserMsg.Render("You said: " + st.Transcript))
		b.WriteString("\n\n")
	}
	switch {
	case st.Loading:
		b.WriteString(m.loading("Translating..."))
	case st.VoiceTranslated != "":
		b.WriteString(m.styles.Card.Render(st.VoiceTranslated))
		if st.Speaking {
			b.WriteString("\n" + m.loading("Speaking..."))
		}
	}
	if st.SpeechErr != "" {
		b.WriteString("\n" + m.styles.Error.Render(st.SpeechErr))
	}
}
