package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/semester/internal/core"
	"github.com/vovakirdan/semester/internal/game"
	"github.com/vovakirdan/semester/internal/session"
	"github.com/vovakirdan/semester/internal/storage"
)

// focus is the panel that receives cursor movement.
type focus int

const (
	focusItems focus = iota
	focusQuests
)

// logLines is how many log entries the play screen shows.
const logLines = 8

// PlayModel is the Bubble Tea model for playing one session.
type PlayModel struct {
	session     *session.Session
	store       *storage.Store
	keys        PlayKeyMap
	help        help.Model
	width       int
	height      int
	focus       focus
	cursor      int // Inventory slot under the cursor
	questCursor int
	mark        int // Slot marked for move/swap/forge, -1 for none
	status      string
	statusColor string
	statusSeq   int
	runs        *RunsModel // Non-nil while the run history is open
	quitting    bool
}

// NewPlayModel creates a play model for sess. store may be nil.
func NewPlayModel(sess *session.Session, store *storage.Store, width, height int) PlayModel {
	return PlayModel{
		session: sess,
		store:   store,
		keys:    DefaultPlayKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
		mark:    -1,
	}
}

// Init initializes the play model.
func (m PlayModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.runs != nil {
			return m.updateRuns(msg)
		}
		return m, nil

	case clearStatusMsg:
		if int(msg) == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		if m.runs != nil {
			return m.updateRuns(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

// updateRuns forwards a message to the open run history.
func (m PlayModel) updateRuns(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.runs.Update(msg)
	runs, ok := next.(RunsModel)
	if !ok {
		return m, cmd
	}
	switch {
	case runs.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case runs.GoingBack():
		m.runs = nil
	default:
		m.runs = &runs
	}
	return m, cmd
}

// handleKey processes keyboard input on the play screen.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.session.State()
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Runs):
		runs := NewRunsModel(m.store, m.width, m.height)
		m.runs = &runs

	case key.Matches(msg, m.keys.Focus):
		if m.focus == focusItems {
			m.focus = focusQuests
		} else {
			m.focus = focusItems
		}

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-inventoryCols, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(inventoryCols, 1)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, 0)

	case key.Matches(msg, m.keys.Attend):
		ok, err := m.session.Attend()
		cmd = m.report(ok, err, refusal(s, "attend"))

	case key.Matches(msg, m.keys.Skip):
		ok, err := m.session.Skip()
		cmd = m.report(ok, err, refusal(s, "skip"))

	case key.Matches(msg, m.keys.Exams):
		ok, err := m.session.Exams()
		cmd = m.report(ok, err, refusal(s, "exams"))

	case key.Matches(msg, m.keys.NextBlock):
		ok, err := m.session.NextBlock()
		if errors.Is(err, session.ErrRunOver) {
			cmd = m.setStatus(fmt.Sprintf("The run is over (%s). Start a new one with semester new.", m.session.Outcome()), game.ColorBad)
			break
		}
		cmd = m.report(ok, err, refusal(s, "next"))

	case key.Matches(msg, m.keys.Select):
		cmd = m.selectUnderCursor(s)

	case key.Matches(msg, m.keys.Mark):
		cmd = m.markOrMove(s)

	case key.Matches(msg, m.keys.Forge):
		if m.mark < 0 {
			cmd = m.setStatus("Mark an item with m first", game.ColorNeutral)
			break
		}
		ok, err := m.session.Forge(m.cursor, m.mark)
		m.mark = -1
		cmd = m.report(ok, err, "Only two items of the same name and level can be forged")

	case key.Matches(msg, m.keys.Trash):
		ok, err := m.session.Trash(m.cursor)
		if m.mark == m.cursor {
			m.mark = -1
		}
		cmd = m.report(ok, err, "Nothing to trash here")

	case key.Matches(msg, m.keys.Buy):
		ok, err := m.session.Buy()
		price := m.session.Rules().ItemPrice(s.Block)
		cmd = m.report(ok, err, fmt.Sprintf("An item costs $%s and needs a free slot", game.FormatAmount(price)))
	}
	return m, cmd
}

// moveCursor moves the inventory cursor by itemStep or the quest cursor by questStep.
func (m *PlayModel) moveCursor(itemStep, questStep int) {
	if m.focus == focusQuests {
		if questStep == 0 {
			return
		}
		n := len(m.session.State().Quests)
		m.questCursor = max(0, min(n-1, m.questCursor+questStep))
		return
	}
	m.cursor = core.Clamp(m.cursor+itemStep, 0, game.InventorySize-1)
}

// selectUnderCursor toggles the item or fulfils the quest under the cursor.
func (m *PlayModel) selectUnderCursor(s *game.State) tea.Cmd {
	if m.focus == focusItems {
		ok, err := m.session.Toggle(m.cursor)
		reason := "Nothing to activate here"
		if s.Items[m.cursor] != nil && !s.IsSelected(m.cursor) {
			reason = fmt.Sprintf("Cannot activate: %d/%d items active or item unavailable", len(s.SelectedItemSlots), s.MaxActivatedItems)
		}
		return m.report(ok, err, reason)
	}

	if m.questCursor >= len(s.Quests) {
		return m.setStatus("No quest selected", game.ColorNeutral)
	}
	ok, err := m.session.Quest(s.Quests[m.questCursor].ID)
	if n := len(m.session.State().Quests); m.questCursor >= n {
		m.questCursor = max(0, n-1)
	}
	return m.report(ok, err, "Cannot afford this quest")
}

// markOrMove marks the item under the cursor, or moves/swaps the marked
// item onto the cursor slot.
func (m *PlayModel) markOrMove(s *game.State) tea.Cmd {
	switch {
	case m.mark < 0:
		if s.Items[m.cursor] == nil {
			return m.setStatus("Nothing to mark here", game.ColorNeutral)
		}
		m.mark = m.cursor
		return nil
	case m.mark == m.cursor:
		m.mark = -1
		return nil
	}

	from := m.mark
	m.mark = -1
	if s.Items[m.cursor] == nil {
		ok, err := m.session.Move(from, m.cursor)
		return m.report(ok, err, "Cannot move there")
	}
	ok, err := m.session.Swap(from, m.cursor)
	return m.report(ok, err, "Cannot swap these slots")
}

// refusal explains why a round or block action was refused in state s.
func refusal(s *game.State, action string) string {
	phase := game.CurrentPhase(s)
	switch action {
	case "attend", "skip":
		if phase != game.PhaseAwaitingAction {
			return "No lecture is pending"
		}
		return fmt.Sprintf("Not enough energy: %s needed", game.FormatAmount(s.NextLecture.EnergyCost))
	case "exams":
		if phase == game.PhaseAwaitingAction {
			return "Lectures are still pending"
		}
		return "Exams are already over"
	}
	return "Attend the exams first"
}

// report turns an action result into a status line. Accepted actions clear it;
// the game log already describes them.
func (m *PlayModel) report(ok bool, err error, reason string) tea.Cmd {
	switch {
	case err != nil:
		return m.setStatus("Error: "+err.Error(), game.ColorBad)
	case !ok:
		return m.setStatus(reason, game.ColorNeutral)
	}
	m.status = ""
	return nil
}

func (m *PlayModel) setStatus(text, color string) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusColor = color
	return clearStatusCmd(m.statusSeq)
}

// View renders the play screen.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}
	if m.runs != nil {
		return m.runs.View()
	}

	s := m.session.State()

	itemsPanel, questsPanel := panelStyle, panelStyle
	questCursor := -1
	if m.focus == focusItems {
		itemsPanel = focusedPanelStyle
	} else {
		questsPanel = focusedPanelStyle
		questCursor = m.questCursor
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		panelStyle.Render(RenderCourses(s)),
		panelStyle.Render(RenderLecture(s)),
		panelStyle.Render(RenderLog(s, logLines)),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		itemsPanel.Render(RenderInventory(s, m.cursor, m.mark)+"\n"+RenderItem(s, m.cursor)),
		questsPanel.Render(RenderQuests(s, questCursor)),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
	if m.width > 0 && lipgloss.Width(body) > m.width {
		body = lipgloss.JoinVertical(lipgloss.Left, left, right)
	}

	status := ""
	if m.status != "" {
		status = colored(m.statusColor).Render(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderHeader(s, m.session.Outcome()),
		body,
		status,
		dimStyle.Render(m.help.View(m.keys)),
	)
}

// Run starts the Bubble Tea program for sess.
func Run(sess *session.Session, store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewPlayModel(sess, store, width, height),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
