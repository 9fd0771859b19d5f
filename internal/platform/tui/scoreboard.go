package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/astrelin/tui-dodge/internal/storage"
)

// maxScoreRows caps how many entries the scoreboard loads.
const maxScoreRows = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the high score screen.
type ScoreboardModel struct {
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	stats    *storage.Stats
	quitting bool
}

// NewScoreboardModel loads scores from the store and builds the view.
func NewScoreboardModel(store *storage.Store, width, height int) (ScoreboardModel, error) {
	entries, err := store.TopScores(maxScoreRows)
	if err != nil {
		return ScoreboardModel{}, err
	}
	stats, err := store.GetStats()
	if err != nil {
		return ScoreboardModel{}, err
	}

	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Points", Width: 10},
		{Title: "Ticks", Width: 8},
		{Title: "Date", Width: 18},
	}

	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.2f", e.Points),
			fmt.Sprintf("%d", e.Ticks),
			e.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	tableHeight := height - 6
	if tableHeight < 3 {
		tableHeight = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("14"))
	t.SetStyles(styles)

	return ScoreboardModel{
		table: t,
		help:  help.New(),
		keys:  DefaultScoreboardKeyMap(),
		stats: stats,
	}, nil
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles scoreboard input.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Render("High Scores - Dodge")

	summary := ""
	if m.stats != nil && m.stats.GamesCount > 0 {
		summary = fmt.Sprintf("Games: %d   Best: %.2f   Avg: %.2f",
			m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore)
	} else {
		summary = "No scores recorded yet."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		m.table.View(),
		m.help.View(m.keys),
	)
}

// RunScoreboard shows the interactive high score table.
func RunScoreboard(store *storage.Store, width, height int) error {
	model, err := NewScoreboardModel(store, width, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
