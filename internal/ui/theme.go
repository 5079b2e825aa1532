package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Axiom theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconQuest  = "🗺️"
	IconHabit  = "🔁"
	IconDone   = "✅"
	IconShield = "🛡️"
	IconBolt   = "⚡"
	IconGold   = "🪙"
	IconCredit = "💠"
	IconRank   = "🎖️"
	IconTrial  = "🔥"
	IconMarket = "🏪"
	IconGuild  = "🏰"
	IconWarn   = "⚠️"
	IconError  = "🧨"
	IconInfo   = "ℹ️"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
	BadgeAscend  = lipgloss.NewStyle().Bold(true).Foreground(cAccent).Render("ASCENSION")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// VerdictText colors a terminal verification status for display.
func VerdictText(status string) string {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case "VERIFIED":
		return Good.Render("VERIFIED")
	case "SOFT_APPROVE":
		return Warn.Render("SOFT APPROVE")
	case "REJECTED":
		return Bad.Render("REJECTED")
	case "FAILED":
		return Muted.Render("FAILED")
	default:
		return Muted.Render(status)
	}
}

// ProgressBar renders a fixed-width bar like [██████────] for the
// given fill ratio.
func ProgressBar(current, max float64, width int) string {
	if width <= 0 {
		width = 10
	}
	ratio := 0.0
	if max > 0 {
		ratio = current / max
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * float64(width))
	return "[" + Good.Render(strings.Repeat("█", filled)) + Dim.Render(strings.Repeat("─", width-filled)) + "]"
}

// HeatStrip renders the 7-day activity history, most recent last.
func HeatStrip(history []bool) string {
	var b strings.Builder
	for _, active := range history {
		if active {
			b.WriteString(Good.Render("■"))
		} else {
			b.WriteString(Dim.Render("·"))
		}
	}
	return b.String()
}

// DifficultyText colors a difficulty label.
func DifficultyText(d string) string {
	switch strings.ToUpper(strings.TrimSpace(d)) {
	case "EASY":
		return Good.Render("EASY")
	case "MEDIUM":
		return Warn.Render("MEDIUM")
	case "HARD":
		return Bad.Render("HARD")
	default:
		return Muted.Render(d)
	}
}
