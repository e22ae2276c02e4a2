package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/semester/internal/game"
)

// Inventory grid layout.
const (
	inventoryCols = 9
	cellWidth     = 6
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	focusedPanelStyle = panelStyle.BorderForeground(lipgloss.Color("57"))
	cursorStyle       = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	markedStyle   = lipgloss.NewStyle().Underline(true)
)

// colored returns a style with the given hex foreground, or the default
// style for an empty color.
func colored(hex string) lipgloss.Style {
	if hex == "" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

// Markup renders a log message: text between ** pairs is bold, the whole
// message takes color.
func Markup(message, color string) string {
	base := colored(color)
	bold := base.Bold(true)

	parts := strings.Split(message, "**")
	var b strings.Builder
	for i, part := range parts {
		if part == "" {
			continue
		}
		// An unmatched trailing ** leaves an odd number of parts; keep it literal.
		if i == len(parts)-1 && i%2 == 1 {
			b.WriteString(base.Render("**" + part))
			continue
		}
		if i%2 == 1 {
			b.WriteString(bold.Render(part))
		} else {
			b.WriteString(base.Render(part))
		}
	}
	return b.String()
}

// RenderHeader renders the block line and the player's resources.
func RenderHeader(s *game.State, outcome game.Outcome) string {
	title := titleStyle.Render(fmt.Sprintf("BLOCK %d", s.Block))
	switch outcome {
	case game.OutcomeWon:
		title += " " + colored(game.ColorGood).Bold(true).Render("RUN WON")
	case game.OutcomeLost:
		title += " " + colored(game.ColorBad).Bold(true).Render("RUN LOST")
	}

	stats := []string{
		fmt.Sprintf("Energy %s/%s", game.FormatAmount(s.Energy), game.FormatAmount(s.MaxEnergy)),
		fmt.Sprintf("Cash $%s", game.FormatAmount(s.Cash)),
		fmt.Sprintf("Procrastinations %s", game.FormatAmount(s.Procrastinations)),
		fmt.Sprintf("Score %s", game.FormatAmount(s.Score)),
		fmt.Sprintf("Lectures left %d", s.LecturesLeft),
	}
	return title + "\n" + dimStyle.Render(strings.Join(stats, "  |  "))
}

// RenderCourses renders every course with its progress, pass chance and effects.
func RenderCourses(s *game.State) string {
	if len(s.Courses) == 0 {
		return dimStyle.Render("No courses")
	}

	lines := make([]string, 0, len(s.Courses))
	for i, c := range s.Courses {
		line := fmt.Sprintf("%s  %s/%s  pass %s",
			colored(c.Color).Bold(true).Render(c.Title),
			game.FormatAmount(c.Understandings),
			game.FormatAmount(c.Goal),
			game.FormatChance(game.PassChance(c)),
		)
		if s.ExamsAttended && i < len(s.ExamResults) {
			if s.ExamResults[i] {
				line += "  " + colored(game.ColorGood).Render("passed")
			} else {
				line += "  " + colored(game.ColorBad).Render("failed")
			}
		}
		if effects := renderEffects(c); effects != "" {
			line += "\n  " + effects
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func renderEffects(c game.Course) string {
	names := make([]string, 0, len(c.Effects))
	for name := range c.Effects {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		e := c.Effects[name]
		def := game.LookupEffect(name)
		parts = append(parts, colored(def.Color).Render(fmt.Sprintf("%s %s", name, game.FormatAmount(e.Value))))
	}
	return strings.Join(parts, "  ")
}

// RenderLecture renders the pending lecture, or what the run waits for instead.
func RenderLecture(s *game.State) string {
	switch game.CurrentPhase(s) {
	case game.PhaseAwaitingExam:
		return titleStyle.Render("Exams are due.") + dimStyle.Render(" Press e to attend them.")
	case game.PhaseAwaitingBlock:
		return titleStyle.Render("Exams are over.") + dimStyle.Render(" Press n to start the next block.")
	}

	l := s.NextLecture
	title := "Lecture"
	color := ""
	if c := s.Course(l.CourseIndex); c != nil {
		title, color = c.Title, c.Color
	}
	return fmt.Sprintf("%s %s-%s\n  attend: %s chance of +%s for %s energy\n  skip:   +%s procrastinations",
		colored(color).Bold(true).Render(title),
		game.FormatTime(l.StartTime),
		game.FormatTime(l.EndTime),
		game.FormatChance(l.UnderstandChance),
		game.FormatAmount(l.PotentialUnderstandings),
		game.FormatAmount(l.EnergyCost),
		game.FormatAmount(l.ProcrastinationValue),
	)
}

// itemLabel abbreviates an item to fit one inventory cell.
func itemLabel(item *game.ItemData) string {
	if item == nil {
		return "  ·   "
	}
	name := []rune(strings.ReplaceAll(item.Name, " ", ""))
	if len(name) > 3 {
		name = name[:3]
	}
	return fmt.Sprintf("%-*s", cellWidth, fmt.Sprintf(" %s%d", string(name), item.Level))
}

// RenderInventory renders the inventory grid. cursor and mark are slot
// indexes, -1 for none.
func RenderInventory(s *game.State, cursor, mark int) string {
	var b strings.Builder
	for slot, item := range s.Items {
		if slot > 0 && slot%inventoryCols == 0 {
			b.WriteString("\n")
		}

		style := lipgloss.NewStyle()
		if item != nil {
			style = colored(game.LookupItem(item.Name).Color)
		}
		if s.IsSelected(slot) {
			style = style.Inherit(selectedStyle)
		}
		if slot == mark {
			style = style.Inherit(markedStyle)
		}
		if slot == cursor {
			style = cursorStyle
		}
		b.WriteString(style.Render(itemLabel(item)))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d/%d activated", len(s.SelectedItemSlots), s.MaxActivatedItems)))
	return b.String()
}

// RenderItem describes the item in slot.
func RenderItem(s *game.State, slot int) string {
	if slot < 0 || slot >= len(s.Items) || s.Items[slot] == nil {
		return dimStyle.Render(fmt.Sprintf("Slot %d is empty", slot))
	}
	item := s.Items[slot]
	def := game.LookupItem(item.Name)

	head := fmt.Sprintf("%s  level %d  %s",
		colored(def.Color).Bold(true).Render(item.Name),
		item.Level,
		strings.Repeat("*", item.Rarity),
	)
	if !def.Enabled(item, s) {
		head += "  " + colored(game.ColorBad).Render("unavailable")
	}
	if desc := def.Description(item, s); desc != "" {
		head += "\n" + Markup(desc, "")
	}
	return head
}

// RenderQuests lists the open quests. cursor is a quest index, -1 for none.
func RenderQuests(s *game.State, cursor int) string {
	if len(s.Quests) == 0 {
		return dimStyle.Render("No open quests")
	}
	lines := make([]string, len(s.Quests))
	for i, q := range s.Quests {
		line := fmt.Sprintf("%s -> %s", currencyLabels(s, q.Costs), currencyLabels(s, q.Rewards))
		if !s.CanAfford(q.Costs) {
			line = dimStyle.Render(Markup(line, ""))
		} else {
			line = Markup(line, q.Color)
		}
		prefix := "  "
		if i == cursor {
			prefix = cursorStyle.Render(">") + " "
		}
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

func currencyLabels(s *game.State, cs []game.Currency) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.Label(s)
	}
	return strings.Join(parts, " + ")
}

// RenderLog renders at most n log entries, newest first.
func RenderLog(s *game.State, n int) string {
	if len(s.Log) == 0 {
		return dimStyle.Render("Nothing happened yet")
	}
	entries := s.Log
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = Markup(e.Message, e.Color)
	}
	return strings.Join(lines, "\n")
}

// RenderStatus renders the full read-only view used by the CLI.
func RenderStatus(s *game.State, outcome game.Outcome) string {
	sections := []string{
		RenderHeader(s, outcome),
		panelStyle.Render(RenderCourses(s)),
		panelStyle.Render(RenderLecture(s)),
		panelStyle.Render(RenderLog(s, 8)),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
