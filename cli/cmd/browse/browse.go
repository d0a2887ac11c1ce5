package browse

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/psplibdoc/log"
	"github.com/ardnew/psplibdoc/prx"
)

// DefaultLimit is the number of result rows shown when none is configured.
const DefaultLimit = 10

const defaultWidth = 80

// model is the Bubble Tea model for the symbol browser.
type model struct {
	ctxFunc  func() context.Context
	input    textinput.Model
	entries  entries
	logger   log.Logger
	matches  fuzzy.Matches
	selected int
	limit    int
	width    int
	quitting bool
}

// Run starts the browser over the symbols of tbl. It returns when the user
// quits or ctx is cancelled.
func Run(
	ctx context.Context,
	tbl *prx.Table,
	limit int,
	logger log.Logger,
) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	m := newModel(ctx, tbl, limit, logger)
	if m.entries.Len() == 0 {
		return ErrEmptyTable.With(slog.Int("modules", tbl.Stats().Modules))
	}

	logger.TraceContext(ctx, "browse start",
		slog.Int("entries", m.entries.Len()),
		slog.Int("limit", m.limit),
	)

	p := tea.NewProgram(m, tea.WithContext(ctx))
	if _, err = p.Run(); err != nil {
		return ErrProgram.Wrap(err)
	}

	return nil
}

func newModel(
	ctx context.Context,
	tbl *prx.Table,
	limit int,
	logger log.Logger,
) model {
	if limit <= 0 {
		limit = DefaultLimit
	}

	ti := textinput.New()
	ti.Prompt = promptStyle.Render(prompt)
	ti.Placeholder = "symbol name or NID"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = defaultWidth

	return model{
		ctxFunc: func() context.Context { return ctx },
		input:   ti,
		entries: collect(tbl),
		logger:  logger,
		limit:   limit,
		width:   defaultWidth,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(prompt) - 2

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
		m.quitting = true

		return m, tea.Quit

	case tea.KeyUp, tea.KeyShiftTab:
		if len(m.matches) > 0 {
			m.selected = (m.selected - 1 + len(m.matches)) % len(m.matches)
		}

		return m, nil

	case tea.KeyDown, tea.KeyTab:
		if len(m.matches) > 0 {
			m.selected = (m.selected + 1) % len(m.matches)
		}

		return m, nil

	case tea.KeyEnter:
		return m.choose()
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	m.refresh()

	return m, cmd
}

// refresh recomputes matches for the current input and resets the
// selection to the best match.
func (m *model) refresh() {
	m.matches = m.entries.search(strings.TrimSpace(m.input.Value()), m.limit)
	m.selected = 0

	m.logger.TraceContext(m.ctxFunc(), "browse search",
		slog.String("pattern", m.input.Value()),
		slog.Int("matches", len(m.matches)),
	)
}

// current returns the highlighted symbol.
func (m model) current() (prx.Match, bool) {
	if m.selected < 0 || m.selected >= len(m.matches) {
		return prx.Match{}, false
	}

	return m.entries[m.matches[m.selected].Index], true
}

// choose prints the highlighted symbol above the view and clears the input.
func (m model) choose() (model, tea.Cmd) {
	sym, ok := m.current()
	if !ok {
		return m, nil
	}

	m.logger.DebugContext(m.ctxFunc(), "browse choose",
		slog.String("name", sym.Name),
		slog.String("nid", sym.NID),
	)

	m.input.SetValue("")
	m.matches = nil
	m.selected = 0

	return m, tea.Println(resultStyle.Render(describe(sym)))
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	switch {
	case strings.TrimSpace(m.input.Value()) == "":
		b.WriteString(hintStyle.Render(
			"Type to search " + strconv.Itoa(m.entries.Len()) +
				" symbols; Up/Down to select, Enter to print, Esc to quit",
		))
		b.WriteString("\n")

	case len(m.matches) == 0:
		b.WriteString(hintStyle.Render("no matches"))
		b.WriteString("\n")

	default:
		for i, match := range m.matches {
			row := renderMatch(match, m.entries[match.Index], i == m.selected)
			b.WriteString(lipgloss.NewStyle().MaxWidth(m.width).Render(row))
			b.WriteString("\n")
		}
	}

	return b.String()
}
