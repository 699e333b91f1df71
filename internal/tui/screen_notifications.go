// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-achieve-portal/internal/service"
	"github.com/MKhiriev/go-achieve-portal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// notifBuckets is the feed narrowing cycle: everything, unread only, then
// each type tag.
var notifBuckets = []string{
	service.FeedAll,
	service.FeedUnread,
	string(models.NotifyInfo),
	string(models.NotifySuccess),
	string(models.NotifyWarning),
	string(models.NotifyError),
}

func (m *mainLoopModel) refreshNotifLocal() {
	m.notifItems = m.services.NotificationService.Filtered(notifBuckets[m.notifBucket])
	if m.notifIdx >= len(m.notifItems) {
		m.notifIdx = len(m.notifItems) - 1
	}
	if m.notifIdx < 0 {
		m.notifIdx = 0
	}
}

func (m mainLoopModel) updateNotifications(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.screen = screenDashboard
		m.loading = true
		return m, m.cmdLoadDashboard()
	case "up":
		if m.notifIdx > 0 {
			m.notifIdx--
		}
	case "down":
		if m.notifIdx < len(m.notifItems)-1 {
			m.notifIdx++
		}
	case "tab":
		m.notifBucket = (m.notifBucket + 1) % len(notifBuckets)
		m.notifIdx = 0
		m.refreshNotifLocal()
	case "r":
		m.loading = true
		return m, m.cmdLoadNotifications()
	case "t":
		note := m.services.NotificationService.SendTest()
		m.status = "Отправлено тестовое уведомление: " + note.Title
		m.unread = m.services.NotificationService.UnreadCount()
		m.refreshNotifLocal()
	case "enter":
		if m.notifIdx >= len(m.notifItems) {
			return m, nil
		}
		return m, m.cmdMarkRead(m.notifItems[m.notifIdx].ID)
	case "m":
		return m, m.cmdMarkAllRead()
	case "ctrl+d":
		if m.notifIdx >= len(m.notifItems) {
			return m, nil
		}
		return m, m.cmdDeleteNotification(m.notifItems[m.notifIdx].ID)
	case "ctrl+x":
		m.askConfirm("Очистить все уведомления?", m.cmdClearNotifications())
		return m, nil
	}

	return m, nil
}

func (m mainLoopModel) viewNotifications() string {
	if m.loading {
		return renderPage("УВЕДОМЛЕНИЯ", m.spin.View()+" Загрузка...", "esc: назад")
	}

	out := fmt.Sprintf("Фильтр: %s │ Непрочитанных: %d\n", notifBucketLabel(notifBuckets[m.notifBucket]), m.unread)
	if m.status != "" {
		out += "Статус: " + m.status + "\n"
	}
	out += "\n"

	if len(m.notifItems) == 0 {
		out += "Уведомлений нет\n"
	} else {
		for i, n := range m.notifItems {
			cursor := " "
			if i == m.notifIdx {
				cursor = ">"
			}
			mark := "●"
			if n.Read {
				mark = " "
			}
			out += fmt.Sprintf("%s %s [%s] %s\n", cursor, mark, notifTypeLabel(n.Type), fitText(n.Title, 44))
			if i == m.notifIdx && strings.TrimSpace(n.Message) != "" {
				out += "      " + fitText(n.Message, 56) + "\n"
			}
		}
	}

	return renderPage(
		"УВЕДОМЛЕНИЯ",
		strings.TrimRight(out, "\n"),
		"enter: прочитано │ m: все прочитаны │ tab: фильтр │ ctrl+d: удалить │ ctrl+x: очистить │ t: тест │ esc: назад",
	)
}

func notifBucketLabel(bucket string) string {
	switch bucket {
	case service.FeedAll:
		return "все"
	case service.FeedUnread:
		return "непрочитанные"
	default:
		return notifTypeLabel(models.NotificationType(bucket))
	}
}

func notifTypeLabel(t models.NotificationType) string {
	switch t {
	case models.NotifyInfo:
		return "инфо"
	case models.NotifySuccess:
		return "успех"
	case models.NotifyWarning:
		return "внимание"
	case models.NotifyError:
		return "ошибка"
	default:
		return string(t)
	}
}

func (m mainLoopModel) cmdMarkRead(id string) tea.Cmd {
	ctx := m.ctx
	feed := m.services.NotificationService

	return func() tea.Msg {
		return notificationsChangedMsg{err: feed.MarkRead(ctx, id)}
	}
}

func (m mainLoopModel) cmdMarkAllRead() tea.Cmd {
	ctx := m.ctx
	feed := m.services.NotificationService

	return func() tea.Msg {
		return notificationsChangedMsg{err: feed.MarkAllRead(ctx)}
	}
}

func (m mainLoopModel) cmdDeleteNotification(id string) tea.Cmd {
	ctx := m.ctx
	feed := m.services.NotificationService

	return func() tea.Msg {
		return notificationsChangedMsg{err: feed.Delete(ctx, id)}
	}
}

func (m mainLoopModel) cmdClearNotifications() tea.Cmd {
	ctx := m.ctx
	feed := m.services.NotificationService

	return func() tea.Msg {
		return notificationsChangedMsg{err: feed.Clear(ctx)}
	}
}
