package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/julien-sobczak/the-slidewriter/internal/core"
	"github.com/julien-sobczak/the-slidewriter/pkg/markdown"
)

// Delay of inactivity before controls are hidden
const autoHideDelay = 3 * time.Second

// Lines reserved below the slide for the controls
const controlsHeight = 2

type autoHideMsg struct {
	activity int
}

// Presenter displays a slideshow full-screen in the terminal.
type Presenter struct {
	slideshow *core.Slideshow
	settings  core.Settings
	navigator *core.Navigator

	progress progress.Model
	keys     presenterKeyMap

	width  int
	height int

	// Incremented on every key press to ignore outdated auto-hide timers
	activity       int
	controlsHidden bool
	quitting       bool
}

func NewPresenter(slideshow *core.Slideshow, settings core.Settings) Presenter {
	return Presenter{
		slideshow: slideshow,
		settings:  settings,
		navigator: core.NewNavigator(len(slideshow.Slides)),
		progress:  progress.New(progress.WithSolidFill(settings.Style.TextColor), progress.WithoutPercentage()),
		keys:      presenterKeys,
	}
}

// RunPresenter presents the slideshow until the user quits.
func RunPresenter(slideshow *core.Slideshow, settings core.Settings) error {
	_, err := tea.NewProgram(NewPresenter(slideshow, settings), tea.WithAltScreen()).Run()
	return err
}

// Navigator returns the current position in the slideshow.
func (m Presenter) Navigator() *core.Navigator {
	return m.navigator
}

func (m Presenter) Init() tea.Cmd {
	return m.scheduleAutoHide()
}

func (m Presenter) scheduleAutoHide() tea.Cmd {
	if !m.settings.Navigation.AutoHideControls {
		return nil
	}
	activity := m.activity
	return tea.Tick(autoHideDelay, func(time.Time) tea.Msg {
		return autoHideMsg{activity: activity}
	})
}

func (m Presenter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = max(msg.Width-4, 10)
		return m, nil

	case autoHideMsg:
		if msg.activity == m.activity {
			m.controlsHidden = true
		}
		return m, nil

	case tea.KeyMsg:
		core.CurrentLogger().Debugf("Presenter received key %q", msg.String())
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

		m.activity++
		m.controlsHidden = false

		switch {
		case key.Matches(msg, m.keys.Next):
			m.navigator.Next()
		case key.Matches(msg, m.keys.Previous):
			m.navigator.Previous()
		case key.Matches(msg, m.keys.First):
			m.navigator.First()
		case key.Matches(msg, m.keys.Last):
			m.navigator.Last()
		case key.Matches(msg, m.keys.Dark):
			m.navigator.ToggleDark()
		}
		return m, m.scheduleAutoHide()
	}
	return m, nil
}

func (m Presenter) colors() (lipgloss.Color, lipgloss.Color) {
	if m.navigator.Dark() {
		return darkForeground, darkBackground
	}
	return lipgloss.Color(m.settings.Style.TextColor), lipgloss.Color(m.settings.Style.BackgroundColor)
}

func (m Presenter) View() string {
	if m.quitting {
		return ""
	}

	slide := m.slideshow.Slides[m.navigator.Index()]
	foreground, background := m.colors()

	text := markdown.ToText(slide.Markdown)
	if slide.Background != "" {
		text += "\n\n" + controlStyle.Render("["+string(slide.MediaType)+": "+slide.Background+"]")
	}
	body := lipgloss.NewStyle().
		Foreground(foreground).
		Align(alignment(m.settings.Style.TextAlign)).
		Render(text)

	if m.width > 0 && m.height > controlsHeight {
		body = lipgloss.Place(m.width, m.height-controlsHeight,
			lipgloss.Center, lipgloss.Center,
			body,
			lipgloss.WithWhitespaceBackground(background))
	}

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	if !m.controlsHidden {
		b.WriteString(m.controls())
	}
	return b.String()
}

// controls renders the progress bar, the navigation hint and the slide counter.
func (m Presenter) controls() string {
	var lines []string
	if m.settings.Appearance.ShowProgressBar {
		lines = append(lines, m.progress.ViewAs(m.navigator.Progress()))
	}

	var footer []string
	if m.navigator.ShowHint(m.settings) {
		footer = append(footer, core.NavigationHint)
	}
	if m.settings.Appearance.ShowSlideCounter {
		footer = append(footer, m.navigator.Counter())
	}
	if len(footer) > 0 {
		lines = append(lines, controlStyle.Render(strings.Join(footer, "   ")))
	}
	return strings.Join(lines, "\n")
}
