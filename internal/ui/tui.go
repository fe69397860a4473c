// Package ui is the screen composition shell: an active-feature tab
// bar plus one view per feature. It holds no business logic; keys map
// to controller calls and views render controller snapshots.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"google.golang.org/genai"

	"tripmate/internal/chat"
	"tripmate/internal/emergency"
	"tripmate/internal/home"
	"tripmate/internal/lens"
	"tripmate/internal/location"
	"tripmate/internal/planner"
	"tripmate/internal/translator"
)

// Screen identifies the active feature.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenAssistant
	ScreenPlanner
	ScreenLens
	ScreenTranslator
	ScreenEmergency
	screenCount
)

var screenTitles = [screenCount]string{
	"Home", "Assistant", "Planner", "Lens", "Translator", "Emergency",
}

// Controllers bundles the per-feature orchestrators the shell renders.
type Controllers struct {
	Home       *home.Controller
	Chat       *chat.Controller
	Planner    *planner.Controller
	Lens       *lens.Controller
	Translator *translator.Controller
	Emergency  *emergency.Controller
	Location   *location.Resolver
}

// Model is the main TUI model.
type Model struct {
	ctx      context.Context
	ctrl     Controllers
	styles   *Styles
	spinner  spinner.Model
	renderer *glamour.TermRenderer

	active Screen
	width  int
	height int
	status string

	// Assistant screen
	chatInput     textinput.Model
	chatImagePart *genai.Part
	chatImageURI  string
	chatImagePath string

	// Planner screen
	plannerInput textinput.Model

	// Lens screen
	lensInput textinput.Model

	// Translator screen
	translatorInput textinput.Model
	languageIndex   int
}

// New creates the shell model.
func New(ctx context.Context, ctrl Controllers) *Model {
	styles := NewStyles()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(76),
	)

	chatInput := textinput.New()
	chatInput.Placeholder = "Type a message, or /attach <image path>..."
	chatInput.CharLimit = 2000
	chatInput.Focus()

	plannerInput := textinput.New()
	plannerInput.Placeholder = "e.g., historical sites, street food, and maybe some shopping"
	plannerInput.CharLimit = 500

	lensInput := textinput.New()
	lensInput.Placeholder = "Path to an image (or drop one into the watch folder)"
	lensInput.CharLimit = 500

	translatorInput := textinput.New()
	translatorInput.Placeholder = "Enter text here..."
	translatorInput.CharLimit = 2000

	return &Model{
		ctx:             ctx,
		ctrl:            ctrl,
		styles:          styles,
		spinner:         sp,
		renderer:        renderer,
		chatInput:       chatInput,
		plannerInput:    plannerInput,
		lensInput:       lensInput,
		translatorInput: translatorInput,
	}
}

// Init starts the spinner tick loop.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update routes messages to the active screen.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case RefreshMsg:
		return m, nil

	case StatusMsg:
		m.status = msg.Text
		return m, nil

	case PickedImageMsg:
		m.handlePickedImage(msg.Path)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.active = (m.active + 1) % screenCount
		m.focusActive()
		return m, nil
	case "shift+tab":
		m.active = (m.active + screenCount - 1) % screenCount
		m.focusActive()
		return m, nil
	}
	m.status = ""

	switch m.active {
	case ScreenAssistant:
		return m.updateAssistant(msg)
	case ScreenPlanner:
		return m.updatePlanner(msg)
	case ScreenLens:
		return m.updateLens(msg)
	case ScreenTranslator:
		return m.updateTranslator(msg)
	case ScreenEmergency:
		return m.updateEmergency(msg)
	}
	return m, nil
}

// focusActive moves keyboard focus to the active screen's input.
func (m *Model) focusActive() {
	m.chatInput.Blur()
	m.plannerInput.Blur()
	m.lensInput.Blur()
	m.translatorInput.Blur()

	switch m.active {
	case ScreenAssistant:
		m.chatInput.Focus()
	case ScreenPlanner:
		m.plannerInput.Focus()
	case ScreenLens:
		m.lensInput.Focus()
	case ScreenTranslator:
		m.translatorInput.Focus()
	}
}

// handlePickedImage routes a dropped image to whichever active screen
// can consume it.
func (m *Model) handlePickedImage(path string) {
	switch m.active {
	case ScreenAssistant:
		m.attachChatImage(path)
	case ScreenLens:
		m.setLensImage(path)
	}
}

// View renders the active screen under the tab bar.
func (m *Model) View() string {
	var body string
	switch m.active {
	case ScreenHome:
		body = m.viewHome()
	case ScreenAssistant:
		body = m.viewAssistant()
	case ScreenPlanner:
		body = m.viewPlanner()
	case ScreenLens:
		body = m.viewLens()
	case ScreenTranslator:
		body = m.viewTranslator()
	case ScreenEmergency:
		body = m.viewEmergency()
	}

	sections := []string{m.viewTabs(), body}
	if m.status != "" {
		sections = append(sections, m.styles.Status.Render(m.status))
	}
	sections = append(sections, m.styles.Muted.Render("tab: switch screen • ctrl+c: quit"))
	return strings.Join(sections, "\n\n")
}

func (m *Model) viewTabs() string {
	tabs := make([]string, screenCount)
	for i := Screen(0); i < screenCount; i++ {
		if i == m.active {
			tabs[i] = m.styles.TabActive.Render(screenTitles[i])
		} else {
			tabs[i] = m.styles.TabIdle.Render(screenTitles[i])
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// markdown renders model prose through glamour, falling back to the
// raw text when rendering fails.
func (m *Model) markdown(text string) string {
	if m.renderer == nil {
		return text
	}
	out, err := m.renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}

func (m *Model) loading(label string) string {
	return fmt.Sprintf("%s %s", m.spinner.View(), m.styles.Muted.Render(label))
}
