// Package tui is the full-screen front end: a scrolling game log, a session
// sidebar and an answer box, driven by a bubbletea program.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/game"
)

const sidebarWidth = 26

// answer is what the model hands back to a waiting prompt
type answer struct {
	text string
	quit bool
}

// Messages sent into the program from the game goroutine
type (
	askMsg   struct{ question string }
	logMsg   struct{ lines []string }
	eventMsg struct{ event game.GameEvent }
	quitMsg  struct{}
)

// sessionInfo is the sidebar state, fed by engine events
type sessionInfo struct {
	round       int
	gamesPlayed int
	dealerWins  int
	lastOutcome string
}

// Model is the bubbletea model for a blackjack session
type Model struct {
	logger *log.Logger
	keys   keyMap

	logViewport viewport.Model
	input       textinput.Model

	gameLog  []string
	question string
	answers  chan answer
	session  sessionInfo

	logFocused  bool
	quitting    bool
	width       int
	height      int
	initialized bool
}

// NewModel creates a model with an empty log
func NewModel(logger *log.Logger) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "y / n"
	ti.Focus()
	ti.CharLimit = 16
	ti.Width = 32
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.Prompt = "> "

	return &Model{
		logger:      logger.WithPrefix("tui"),
		keys:        defaultKeyMap(),
		logViewport: vp,
		input:       ti,
		answers:     make(chan answer, 1),
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case quitMsg:
		m.quitting = true
		return m, tea.Quit

	case askMsg:
		m.question = msg.question
		m.logFocused = false
		m.input.Focus()

	case logMsg:
		m.gameLog = append(m.gameLog, msg.lines...)
		m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
		m.logViewport.GotoBottom()

	case eventMsg:
		m.applyEvent(msg.event)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.reply(answer{quit: true})
			return m, tea.Quit
		case key.Matches(msg, m.keys.Focus):
			m.logFocused = !m.logFocused
			if m.logFocused {
				m.input.Blur()
			} else {
				m.input.Focus()
			}
		case key.Matches(msg, m.keys.Submit) && !m.logFocused:
			if m.question == "" {
				break
			}
			text := strings.TrimSpace(m.input.Value())
			m.gameLog = append(m.gameLog, InfoStyle.Render(m.question+text))
			m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
			m.logViewport.GotoBottom()
			m.question = ""
			m.input.SetValue("")
			m.reply(answer{text: text})
		case m.logFocused && key.Matches(msg, m.keys.ScrollUp):
			m.logViewport.ScrollUp(1)
		case m.logFocused && key.Matches(msg, m.keys.ScrollDown):
			m.logViewport.ScrollDown(1)
		case m.logFocused && key.Matches(msg, m.keys.Top):
			m.logViewport.GotoTop()
		case m.logFocused && key.Matches(msg, m.keys.Bottom):
			m.logViewport.GotoBottom()
		}
	}

	var cmd tea.Cmd
	if !m.logFocused {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// reply hands an answer to the waiting prompt without blocking the UI
func (m *Model) reply(a answer) {
	select {
	case m.answers <- a:
	default:
		m.logger.Debug("Dropping answer, nobody is waiting", "answer", a.text, "quit", a.quit)
	}
}

func (m *Model) applyEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.RoundStartEvent:
		m.session.round = e.Round
		m.session.gamesPlayed = e.GamesPlayed
		m.session.dealerWins = e.DealerWins
	case game.RoundEndEvent:
		if e.Result.Outcome == game.DealerWin {
			m.session.dealerWins++
		}
		m.session.lastOutcome = e.Result.Outcome.String()
	}
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	answerContent := m.renderAnswerPane()
	answerHeight := lipgloss.Height(answerContent)
	answerPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.border(!m.logFocused)).
		Width(max(m.width-2, 1)).
		Height(max(answerHeight, 1)).
		Render(answerContent)

	paneHeight := max(m.height-answerHeight-4, 1)
	sidebar := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(blurredBorder).
		Width(sidebarWidth).
		Height(paneHeight).
		Render(m.renderSidebar())

	m.logViewport.Width = max(m.width-sidebarWidth-4, 1)
	m.logViewport.Height = paneHeight
	if !m.initialized && m.logViewport.Width > 1 && paneHeight > 1 {
		m.logViewport.GotoBottom()
		m.initialized = true
	}
	logPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.border(m.logFocused)).
		Width(m.logViewport.Width).
		Height(paneHeight).
		Render(m.logViewport.View())

	top := lipgloss.JoinHorizontal(lipgloss.Top, logPane, sidebar)
	return lipgloss.JoinVertical(lipgloss.Top, top, answerPane)
}

func (m *Model) border(focused bool) lipgloss.Color {
	if focused {
		return focusedBorder
	}
	return blurredBorder
}

func (m *Model) renderSidebar() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(" Blackjack "))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Round: %d\n", m.session.round)
	fmt.Fprintf(&b, "Games: %d\n", m.session.gamesPlayed)
	fmt.Fprintf(&b, "House wins: %d\n", m.session.dealerWins)
	if m.session.gamesPlayed > 0 {
		rate := float64(m.session.dealerWins) / float64(m.session.gamesPlayed)
		fmt.Fprintf(&b, "House rate: %.0f%%\n", rate*100)
	}
	if m.session.lastOutcome != "" {
		b.WriteString("\n")
		b.WriteString(WarningStyle.Render("Last: " + m.session.lastOutcome))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderAnswerPane() string {
	var b strings.Builder
	if m.question != "" {
		b.WriteString(QuestionStyle.Render(m.question))
	} else {
		b.WriteString(InfoStyle.Render("Waiting..."))
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render(m.keys.help(m.logFocused)))
	return b.String()
}

// GameLog returns the lines logged so far
func (m *Model) GameLog() []string {
	return append([]string(nil), m.gameLog...)
}

// Question returns the pending question, empty when none
func (m *Model) Question() string {
	return m.question
}
