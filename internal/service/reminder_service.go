package service

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"
)

// ReminderService builds the human-readable daily report pushed to the
// notification channel.
type ReminderService struct {
	dashboard *DashboardService
	topN      int
}

func NewReminderService(dashboard *DashboardService, topN int) *ReminderService {
	return &ReminderService{dashboard: dashboard, topN: topN}
}

// DailySummary renders the progression header plus today's most urgent tasks
// as Telegram-flavoured HTML.
func (s *ReminderService) DailySummary(ctx context.Context, now time.Time) (string, error) {
	overview, err := s.dashboard.Overview(ctx, now, s.topN)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString("📋 <b>Daily report</b>\n")
	builder.WriteString(fmt.Sprintf("🗓 %s\n", now.Format("2006-01-02")))
	builder.WriteString(fmt.Sprintf("🏅 Level %d · %s · %d XP\n\n", overview.Level, html.EscapeString(overview.LevelTitle), overview.User.XP))

	builder.WriteString("🔥 <b>Most urgent</b>\n")
	if len(overview.TopTasks) == 0 {
		builder.WriteString("— no open tasks\n")
	} else {
		for _, task := range overview.TopTasks {
			builder.WriteString(formatScoredTask(task, now))
		}
	}

	return strings.TrimSpace(builder.String()), nil
}

func formatScoredTask(task ScoredTask, now time.Time) string {
	var sb strings.Builder

	icon := "🟢"
	if task.Deadline != nil {
		switch delta := daysBetween(now, *task.Deadline); {
		case delta < 0:
			icon = "⚠️"
		case delta <= 1:
			icon = "⏳"
		}
	}

	sb.WriteString(fmt.Sprintf("%s %s", icon, html.EscapeString(strings.TrimSpace(task.Name))))

	if task.Deadline != nil {
		delta := daysBetween(now, *task.Deadline)
		switch {
		case delta < 0:
			sb.WriteString(fmt.Sprintf("\n   ⏰ due %s — <b>%d days overdue</b>", task.Deadline.Format("2006-01-02"), -delta))
		case delta == 0:
			sb.WriteString(fmt.Sprintf("\n   ⏰ due %s — <b>today</b>", task.Deadline.Format("2006-01-02")))
		default:
			sb.WriteString(fmt.Sprintf("\n   ⏰ due %s · %d days left", task.Deadline.Format("2006-01-02"), delta))
		}
	}

	if task.Description != "" {
		sb.WriteString(fmt.Sprintf("\n   📝 %s", html.EscapeString(strings.TrimSpace(task.Description))))
	}

	sb.WriteString(fmt.Sprintf("\n   🎯 %d XP · score %.1f", task.XPAward, task.Score))
	sb.WriteByte('\n')
	return sb.String()
}
