package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m mainLoopModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "l":
		m.logout = true
		return m, tea.Quit
	case "r":
		m.loading = true
		m.status = ""
		return m, m.cmdLoadDashboard()
	case "1":
		return m.openList(false)
	case "2":
		m.screen = screenDrafts
		m.loading = true
		return m, m.cmdLoadDrafts()
	case "3":
		m.screen = screenNotifications
		m.notifIdx = 0
		m.refreshNotifLocal()
		return m, nil
	case "4":
		m.screen = screenReports
		m.loading = true
		m.initReportInputs()
		return m, m.cmdLoadReports()
	case "5":
		if !m.user.IsAdmin() {
			return m, nil
		}
		m.screen = screenCriteria
		m.loading = true
		return m, m.cmdLoadCriteria()
	case "6":
		if !m.user.IsAdmin() {
			return m, nil
		}
		m.screen = screenAdmin
		m.loading = true
		return m, m.cmdLoadAdmin()
	case "7":
		if !m.user.IsAdmin() {
			return m, nil
		}
		return m.openList(true)
	case "n":
		m.startForm(newDraftSubmission(), screenDashboard)
		return m, m.cmdLoadFormCriteria()
	}

	return m, nil
}

func (m mainLoopModel) viewDashboard() string {
	var b strings.Builder

	role := "сотрудник"
	if m.user.IsAdmin() {
		role = "администратор"
	}
	b.WriteString("Пользователь: " + valueOrDash(m.user.Fullname) + " (" + role + ")\n")
	b.WriteString(fmt.Sprintf("Непрочитанных уведомлений: %d\n\n", m.unread))

	if m.loading {
		b.WriteString(m.spin.View() + " Загрузка...\n")
		return renderPage("ГЛАВНАЯ СТРАНИЦА", strings.TrimRight(b.String(), "\n"), m.dashboardHotKeys())
	}

	b.WriteString("Показатель    │ Кол-во\n")
	b.WriteString("──────────────┼────────\n")
	b.WriteString(fmt.Sprintf("Всего         │ %d\n", m.stats.TotalActivities))
	b.WriteString(fmt.Sprintf("На рассмотр.  │ %d\n", m.stats.PendingActivities))
	b.WriteString(fmt.Sprintf("Принято       │ %d\n", m.stats.ApprovedActivities))
	b.WriteString(fmt.Sprintf("Отклонено     │ %d\n", m.stats.RejectedActivities))
	b.WriteString(fmt.Sprintf("Черновики     │ %d\n", m.stats.DraftActivities))

	if len(m.recent) > 0 {
		b.WriteString("\nПоследние события:\n")
		for i, r := range m.recent {
			if i >= 5 {
				break
			}
			b.WriteString("  • " + fitText(r.Message, 60))
			if r.Time != "" {
				b.WriteString("  (" + r.Time + ")")
			}
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\nСтатус: " + m.status + "\n")
	}

	return renderPage("ГЛАВНАЯ СТРАНИЦА", strings.TrimRight(b.String(), "\n"), m.dashboardHotKeys())
}

func (m mainLoopModel) dashboardHotKeys() string {
	hotKeys := "1: достижения │ 2: черновики │ 3: уведомл. │ 4: отчёты"
	if m.user.IsAdmin() {
		hotKeys += " │ 5: критерии │ 6: админ. │ 7: архив"
	}
	return hotKeys + " │ n: новое │ r: обновить │ l: выход из уч. записи"
}
