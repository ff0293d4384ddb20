// Package dashboard renders the analytics view: statistic panels and the
// insight list derived from the current task snapshot.
package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwhitby/daybook/internal/core/analytics"
	"github.com/mwhitby/daybook/internal/domain"
	"github.com/mwhitby/daybook/internal/ui/styles"
)

// Render renders the full dashboard
func Render(report analytics.Report, insights []analytics.Insight, s *styles.Styles, width, height int) string {
	panelWidth := width/3 - 2
	if panelWidth < 20 {
		panelWidth = 20
	}

	topRow := lipgloss.JoinHorizontal(lipgloss.Top,
		renderOverview(report.Overview, s, panelWidth),
		renderWeek(report.Today, s, panelWidth),
		renderStreak(report.Streak, s, panelWidth),
	)

	bottomRow := lipgloss.JoinHorizontal(lipgloss.Top,
		renderPriority(report.Priority, s, panelWidth),
		renderTimePattern(report.TimePattern, s, panelWidth),
		renderInsights(insights, s, panelWidth),
	)

	return lipgloss.JoinVertical(lipgloss.Left, topRow, bottomRow)
}

func renderOverview(o analytics.OverviewStats, s *styles.Styles, width int) string {
	lines := []string{
		s.PanelTitle.Render("Overview"),
		statLine(s, "Planned", o.Planned),
		statLine(s, "Active", o.Active),
		statLine(s, "Resolved", o.Resolved),
		statLine(s, "Overdue", o.Overdue),
	}
	return s.Panel.Width(width).Render(strings.Join(lines, "\n"))
}

func renderWeek(t analytics.TodayStats, s *styles.Styles, width int) string {
	lines := []string{
		s.PanelTitle.Render("This Week"),
		statLine(s, "Created", t.CreatedThisWeek),
		statLine(s, "Completed", t.CompletedThisWeek),
	}
	return s.Panel.Width(width).Render(strings.Join(lines, "\n"))
}

func renderStreak(st analytics.StreakStats, s *styles.Styles, width int) string {
	state := "lapsed"
	if st.Current.Active {
		state = "active"
	}
	lines := []string{
		s.PanelTitle.Render("Streak"),
		s.StatValue.Render(fmt.Sprintf("%d days", st.Current.Count)) + " " + s.StatLabel.Render(state),
		statLine(s, "Best", st.Best),
	}
	return s.Panel.Width(width).Render(strings.Join(lines, "\n"))
}

func renderPriority(p analytics.PriorityStats, s *styles.Styles, width int) string {
	lines := []string{s.PanelTitle.Render("By Priority")}
	for _, pr := range domain.Priorities {
		line := fmt.Sprintf("%-7s %s", string(pr), s.StatValue.Render(fmt.Sprintf("%d", p.Counts[pr])))
		if overdue := p.Overdue[pr]; overdue > 0 {
			line += " " + s.DueOverdue.Render(fmt.Sprintf("(%d overdue)", overdue))
		}
		lines = append(lines, line)
	}
	return s.Panel.Width(width).Render(strings.Join(lines, "\n"))
}

// weekdayInitials follows the Monday-first weekday indexing of the stats.
var weekdayInitials = [7]string{"M", "T", "W", "T", "F", "S", "S"}

func renderTimePattern(tp analytics.TimePatternStats, s *styles.Styles, width int) string {
	lines := []string{s.PanelTitle.Render("Completion Times")}
	for _, part := range analytics.DayParts {
		count := tp.Completions[part]
		lines = append(lines, fmt.Sprintf("%-10s %s %s",
			string(part),
			s.StatValue.Render(fmt.Sprintf("%d", count)),
			s.StatLabel.Render(bar(count, maxDayPart(tp))),
		))
	}

	var days, counts strings.Builder
	for i, initial := range weekdayInitials {
		days.WriteString(fmt.Sprintf("%-4s", initial))
		counts.WriteString(fmt.Sprintf("%-4d", tp.Weekdays[i]))
	}
	lines = append(lines,
		"",
		s.StatLabel.Render("by weekday"),
		s.StatLabel.Render(strings.TrimRight(days.String(), " ")),
		s.StatValue.Render(strings.TrimRight(counts.String(), " ")),
	)

	return s.Panel.Width(width).Render(strings.Join(lines, "\n"))
}

func renderInsights(insights []analytics.Insight, s *styles.Styles, width int) string {
	lines := []string{s.PanelTitle.Render("Insights")}
	for _, in := range insights {
		style := s.InsightNeutral
		marker := "·"
		switch in.Type {
		case analytics.InsightPositive:
			style, marker = s.InsightPositive, "▲"
		case analytics.InsightWarning:
			style, marker = s.InsightWarning, "▼"
		}
		lines = append(lines, style.Render(marker+" "+in.Message))
	}
	return s.Panel.Width(width).Render(strings.Join(lines, "\n"))
}

func statLine(s *styles.Styles, label string, value int) string {
	return fmt.Sprintf("%-10s %s", label, s.StatValue.Render(fmt.Sprintf("%d", value)))
}

func maxDayPart(tp analytics.TimePatternStats) int {
	max := 0
	for _, count := range tp.Completions {
		if count > max {
			max = count
		}
	}
	return max
}

// bar renders a small proportional bar, scaled to the busiest bucket
func bar(count, max int) string {
	if max == 0 || count == 0 {
		return ""
	}
	const barWidth = 10
	filled := count * barWidth / max
	if filled == 0 {
		filled = 1
	}
	return strings.Repeat("█", filled)
}
