package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Annoyingpheonix/Axiom/internal/engine"
	"github.com/Annoyingpheonix/Axiom/internal/storage"
	"github.com/Annoyingpheonix/Axiom/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	stats   *storage.UserStats
	profile *storage.UserProfile
	habits  []*storage.Habit

	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	stats   *storage.UserStats
	profile *storage.UserProfile
	habits  []*storage.Habit
	err     error
}

type completedMsg struct {
	id  string
	res *engine.CompletionResult
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		stats, err := m.svc.Stats(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		profile, err := m.svc.Profile(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		habits, err := m.svc.ListHabits(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{stats: stats, profile: profile, habits: habits}
	}
}

func (m boardModel) completeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteAutoConfirm(m.ctx, id)
		return completedMsg{id: id, res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.stats = msg.stats
		m.profile = msg.profile
		m.habits = msg.habits
		if m.selected >= len(m.habits) {
			m.selected = len(m.habits) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		log := fmt.Sprintf("Completed: +%d XP, +%.0f gold", msg.res.Reward.XP, msg.res.Reward.Gold)
		if msg.res.LevelUp() {
			log += fmt.Sprintf(" — %s (level %d → %d)", ui.BadgeLevelUp, msg.res.LevelBefore, msg.res.LevelAfter)
		}
		m.lastLog = log
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.habits)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ":
			if m.selected < 0 || m.selected >= len(m.habits) {
				return m, nil
			}
			h := m.habits[m.selected]
			if h.Completed {
				m.lastLog = "Already completed today."
				return m, nil
			}
			if engine.VerificationMethod(h.VerificationMethod) != engine.MethodAutoConfirm {
				m.lastLog = "This habit needs evidence: use `ax verify`."
				return m, nil
			}
			m.lastLog = "Completing " + h.Title + "…"
			return m, m.completeCmd(h.ID)
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 28
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.stats == nil {
		return "Axiom — loading…"
	}
	u := m.stats
	bar := ui.ProgressBar(u.XP, u.MaxXP, 24)
	rank := engine.SocialRank(u.SocialRank)
	return fmt.Sprintf("Axiom | %s | Level %d %s | Rank %s | %s %.0f %s %.0f | Streak %d %s",
		u.ClassType, u.Level, bar, rank,
		ui.IconGold, u.Gold, ui.IconCredit, u.Credits,
		u.Streak, ui.HeatStrip(u.History))
}

func (m boardModel) renderSidebar() string {
	if m.stats == nil {
		return "Stats\n\nLoading…"
	}
	u := m.stats
	lines := []string{"Attributes"}
	lines = append(lines, fmt.Sprintf("- STR %d", u.AttrSTR))
	lines = append(lines, fmt.Sprintf("- INT %d", u.AttrINT))
	lines = append(lines, fmt.Sprintf("- DEX %d", u.AttrDEX))
	lines = append(lines, fmt.Sprintf("- CHA %d", u.AttrCHA))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("Class L%d %s", u.ClassLevel, ui.ProgressBar(u.ClassXP, u.MaxClassXP, 14)))
	if m.profile != nil {
		lines = append(lines, fmt.Sprintf("Trust %.1f", m.profile.TrustScore))
	}
	if engine.JobChangeStatus(u.JobChange) == engine.JobInTrial {
		lines = append(lines, fmt.Sprintf("Trial %d/%d %s", u.TrialProgress, engine.TrialLength, ui.IconTrial))
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- c/space: complete")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	var out []string
	out = append(out, "Habits")
	if len(m.habits) == 0 {
		out = append(out, "(none — try `ax add` or `ax quest`)")
		return strings.Join(out, "\n")
	}
	for i, h := range m.habits {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		mark := " "
		if h.Completed {
			mark = ui.IconDone
		}
		status := ""
		if h.VerificationStatus != nil {
			status = " " + ui.VerdictText(*h.VerificationStatus)
		}
		trial := ""
		if h.IsTrial {
			trial = " " + ui.IconTrial
		}
		out = append(out, fmt.Sprintf("%s%s %s [%s/%s]%s%s", cursor, mark, h.Title,
			ui.DifficultyText(h.Difficulty), h.Stat, status, trial))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
