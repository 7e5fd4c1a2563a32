package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/diogo/thrivemum/internal/logging"
	"github.com/diogo/thrivemum/internal/models"
	"github.com/diogo/thrivemum/internal/refresh"
	"github.com/diogo/thrivemum/internal/render"
	"github.com/diogo/thrivemum/internal/rules"
	"github.com/diogo/thrivemum/internal/session"
)

// Animation tick message
type animationTickMsg time.Time

// Message types for the TUI
type (
	replyMsg struct {
		turn *session.Turn
		text string
	}
	tipMsg string
)

// Options configures the chat screen
type Options struct {
	// Backend is shown in the header, e.g. "Gemini" or "offline"
	Backend string
	// RefreshInterval controls how often the tip of the day is recomputed
	RefreshInterval time.Duration
	Render          render.Options
	Logger          *zap.Logger
	// Now is the clock used for the tip of the day
	Now func() time.Time
}

// Model represents the TUI state
type Model struct {
	ctx        context.Context
	session    *session.Session
	backend    string
	renderOpts render.Options
	logger     *zap.Logger

	tips   *refresh.Refresher[string]
	tipsCh chan string

	// UI components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	// State
	pending        *session.Turn
	tip            string
	suggestions    []string
	ready          bool
	animationFrame int

	// Dimensions
	width  int
	height int
}

// NewChatModel creates a chat screen around s
func NewChatModel(ctx context.Context, s *session.Session, opts Options) Model {
	ta := textarea.New()
	ta.Placeholder = "Ask about groceries, batch cooking, investing..."
	ta.CharLimit = 1000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = loadingStyle

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := logging.OrNop(opts.Logger)

	tipsCh := make(chan string, 1)
	tips := refresh.New("tip-of-the-day", opts.RefreshInterval,
		func(context.Context) (string, error) {
			return rules.TipOfTheDay(now()).String(), nil
		},
		refresh.WithLogger[string](logger),
		refresh.WithOnUpdate(func(tip string) {
			// drop the stale value so the newest one is delivered
			select {
			case <-tipsCh:
			default:
			}
			tipsCh <- tip
		}),
	)

	if ctx == nil {
		ctx = context.Background()
	}

	// seed the header; the loop started by RunChat keeps it current
	tip := rules.TipOfTheDay(now()).String()
	if err := tips.Refresh(ctx); err == nil {
		tip, _ = tips.Latest()
	}

	backend := opts.Backend
	if backend == "" {
		backend = "offline"
	}

	return Model{
		ctx:         ctx,
		session:     s,
		backend:     backend,
		renderOpts:  opts.Render,
		logger:      logger,
		tips:        tips,
		tipsCh:      tipsCh,
		textarea:    ta,
		spinner:     sp,
		tip:         tip,
		suggestions: rules.QuickSuggestions(),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.waitForTip(),
	)
}

// animationTick returns a command that sends animation tick messages
func animationTick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return animationTickMsg(t)
	})
}

// waitForTip delivers the next refreshed tip
func (m Model) waitForTip() tea.Cmd {
	ch := m.tipsCh
	return func() tea.Msg {
		tip, ok := <-ch
		if !ok {
			return nil
		}
		return tipMsg(tip)
	}
}

// awaiting reports whether a reply is outstanding
func (m Model) awaiting() bool {
	return m.pending != nil
}

// showSuggestions is true while the log holds only the greeting
func (m Model) showSuggestions() bool {
	return !m.awaiting() && m.session.Len() == 1
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4
		inputHeight := 5
		statusHeight := 1
		padding := 2

		vpHeight := m.height - headerHeight - inputHeight - statusHeight - padding
		if vpHeight < 5 {
			vpHeight = 5
		}
		contentWidth := m.width - 4

		if !m.ready {
			m.viewport = viewport.New(contentWidth, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = vpHeight
		}
		m.textarea.SetWidth(contentWidth - 4)
		m.updateViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			if m.awaiting() {
				return m, nil
			}
			input := strings.TrimSpace(m.textarea.Value())
			if input == "exit" || input == "quit" {
				return m, tea.Quit
			}
			return m.submit(input)

		case "alt+1", "alt+2", "alt+3", "alt+4", "alt+5":
			// bare digits stay typeable; a question may start with one
			if m.showSuggestions() && m.textarea.Value() == "" {
				idx := int(msg.Runes[0] - '1')
				if idx < len(m.suggestions) {
					return m.submit(m.suggestions[idx])
				}
			}
			return m, nil
		}

	case replyMsg:
		if _, err := m.session.Complete(msg.turn, msg.text); err != nil {
			m.logger.Warn("discarding reply", zap.Error(err))
			break
		}
		m.pending = nil
		cmds = append(cmds, m.textarea.Focus())
		m.updateViewport()
		m.viewport.GotoBottom()

	case tipMsg:
		m.tip = string(msg)
		cmds = append(cmds, m.waitForTip())

	case spinner.TickMsg:
		if m.awaiting() {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case animationTickMsg:
		if m.awaiting() {
			m.animationFrame++
			cmds = append(cmds, animationTick())
		}
	}

	// Only pass KeyMsg to textarea to prevent escape sequence leaks
	if !m.awaiting() {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.textarea, cmd = m.textarea.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit hands text to the session and issues the reply request.
// Blank text is ignored.
func (m Model) submit(text string) (tea.Model, tea.Cmd) {
	turn, err := m.session.Submit(text)
	if err != nil {
		m.logger.Debug("submit rejected", zap.Error(err))
		return m, nil
	}

	m.pending = turn
	m.animationFrame = 0
	m.textarea.Reset()
	m.textarea.Blur()
	m.updateViewport()
	m.viewport.GotoBottom()

	return m, tea.Batch(
		m.requestReply(turn),
		m.spinner.Tick,
		animationTick(),
	)
}

// requestReply creates a command that asks the responder for turn's reply
func (m Model) requestReply(turn *session.Turn) tea.Cmd {
	ctx, s := m.ctx, m.session
	return func() tea.Msg {
		return replyMsg{turn: turn, text: s.Reply(ctx, turn)}
	}
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	contentWidth := m.width - 4
	var sections []string

	header := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Center,
			titleStyle.Render("✦ ThriveMum"),
			hintStyle.Render("  •  "),
			subtitleStyle.Render(m.backend),
		),
		tipStyle.Render("Tip of the day: "+m.tip),
	)
	sections = append(sections, headerStyle.Width(contentWidth).Render(header))

	sections = append(sections, messagesAreaStyle.
		Width(contentWidth).
		Height(m.viewport.Height).
		Render(m.viewport.View()))

	var inputContent string
	if m.awaiting() {
		inputContent = m.renderLoadingAnimation()
	} else {
		inputContent = lipgloss.JoinVertical(
			lipgloss.Left,
			inputLabelStyle.Render("You"),
			m.textarea.View(),
		)
	}
	sections = append(sections, inputPanelStyle.Width(contentWidth).Render(inputContent))

	sections = append(sections, m.renderStatusBar(contentWidth))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderLoadingAnimation renders the animated thinking indicator
func (m Model) renderLoadingAnimation() string {
	frame := m.animationFrame

	var bar strings.Builder
	for i := 0; i < 12; i++ {
		style := lipgloss.NewStyle().Foreground(gradientColors[(i+frame)%len(gradientColors)])
		bar.WriteString(style.Render("█"))
	}

	dots := strings.Repeat("●", (frame/3)%4) + strings.Repeat("○", 3-(frame/3)%4)
	text := lipgloss.NewStyle().Foreground(colorText).Render(" ThriveMum is thinking ")

	return fmt.Sprintf("%s %s %s %s", m.spinner.View(), bar.String(), text, hintStyle.Render(dots))
}

// renderStatusBar renders the bottom status bar with shortcuts
func (m Model) renderStatusBar(width int) string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send"},
		{"Esc", "Quit"},
		{"↑↓", "Scroll"},
	}
	if m.showSuggestions() {
		shortcuts = append(shortcuts, struct {
			key  string
			desc string
		}{"Alt+1-5", "Suggestion"})
	}

	var items []string
	for _, s := range shortcuts {
		items = append(items, statusKeyStyle.Render(s.key)+statusDescStyle.Render(" "+s.desc))
	}

	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(strings.Join(items, "  │  "))
}

// updateViewport refreshes the viewport content from the session log
func (m *Model) updateViewport() {
	var content strings.Builder
	bubbleWidth := m.viewport.Width - 6
	if bubbleWidth < 20 {
		bubbleWidth = 20
	}

	for i, msg := range m.session.Messages() {
		if i > 0 {
			content.WriteString("\n")
		}

		if msg.Role == models.RoleUser {
			label := userLabelStyle.Render("⬤ You")
			bubble := userBubbleStyle.Width(bubbleWidth).Render(msg.Text)
			content.WriteString(label + "\n" + bubble)
		} else {
			label := assistantLabelStyle.Render("✦ ThriveMum")
			rendered := render.Reply(msg.Text, m.renderOpts.WithWidth(bubbleWidth-4))
			bubble := assistantBubbleStyle.Width(bubbleWidth).Render(rendered)
			content.WriteString(label + "\n" + bubble)
		}
		content.WriteString("\n")
	}

	if m.showSuggestions() {
		content.WriteString("\n" + hintStyle.Render("Quick questions:") + "\n")
		for i, q := range m.suggestions {
			content.WriteString(suggestionKeyStyle.Render(fmt.Sprintf("  Alt+%d ", i+1)) + suggestionStyle.Render(q) + "\n")
		}
	}

	m.viewport.SetContent(content.String())
}

// RunChat starts the chat TUI and keeps the tip of the day fresh until it exits
func RunChat(ctx context.Context, s *session.Session, opts Options) error {
	m := NewChatModel(ctx, s, opts)

	m.tips.Start(ctx)
	defer func() {
		m.tips.Stop()
		close(m.tipsCh)
	}()

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	return err
}
