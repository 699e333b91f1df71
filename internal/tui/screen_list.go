// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-achieve-portal/internal/filter"
	"github.com/MKhiriev/go-achieve-portal/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// listStatusOptions is what the status filter cycles through. "all" also
// admits drafts; a concrete status never does.
var listStatusOptions = []string{
	filter.All,
	string(models.StatusUnderReview),
	string(models.StatusApproved),
	string(models.StatusRejected),
}

func (m mainLoopModel) openList(archived bool) (tea.Model, tea.Cmd) {
	m.screen = screenList
	m.listArchived = archived
	m.listIdx = 0
	m.loading = true
	m.status = ""
	if m.filterInputs == nil {
		m.initFilterInputs()
	}
	return m, m.cmdLoadList(archived)
}

func (m *mainLoopModel) initFilterInputs() {
	term := textinput.New()
	term.Placeholder = "поиск"
	term.Width = 30

	dept := textinput.New()
	dept.Placeholder = "подразделение"
	dept.Width = 30

	m.filterInputs = []textinput.Model{term, dept}
	m.filterFocus = 0
	m.filterStatus = 0
}

func (m mainLoopModel) currentFilter() filter.Criteria {
	c := filter.Criteria{Status: listStatusOptions[m.filterStatus]}
	if len(m.filterInputs) == 2 {
		c.Term = strings.TrimSpace(m.filterInputs[0].Value())
		c.Department = strings.TrimSpace(m.filterInputs[1].Value())
	}
	return c
}

// refreshListLocal re-derives the visible achievements from the service
// cache without a network round-trip. Archived listings are not cached and
// keep their last loaded snapshot.
func (m *mainLoopModel) refreshListLocal() {
	if !m.listArchived {
		m.listItems = m.services.ActivityService.Filtered(m.currentFilter())
	}
	m.clampListIdx()
}

func (m *mainLoopModel) clampListIdx() {
	if m.listIdx >= len(m.listItems) {
		m.listIdx = len(m.listItems) - 1
	}
	if m.listIdx < 0 {
		m.listIdx = 0
	}
}

func (m mainLoopModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.filterMode {
			return m.updateFilterInputs(msg)
		}
		return m, nil
	}

	if m.filterMode {
		switch keyMsg.String() {
		case "esc":
			m.filterMode = false
			return m, nil
		case "tab", "shift+tab":
			m.filterInputs[m.filterFocus].Blur()
			m.filterFocus = (m.filterFocus + 1) % len(m.filterInputs)
			m.filterInputs[m.filterFocus].Focus()
			return m, nil
		case "enter":
			m.filterMode = false
			m.filterInputs[m.filterFocus].Blur()
			m.refreshListLocal()
			return m, nil
		}
		return m.updateFilterInputs(msg)
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.screen = screenDashboard
		m.loading = true
		return m, m.cmdLoadDashboard()
	case "up":
		if m.listIdx > 0 {
			m.listIdx--
		}
	case "down":
		if m.listIdx < len(m.listItems)-1 {
			m.listIdx++
		}
	case "f":
		m.filterMode = true
		m.filterFocus = 0
		m.filterInputs[0].Focus()
		return m, textinput.Blink
	case "s":
		m.filterStatus = (m.filterStatus + 1) % len(listStatusOptions)
		m.refreshListLocal()
		return m, nil
	case "x":
		m.initFilterInputs()
		m.refreshListLocal()
		return m, nil
	case "r":
		m.loading = true
		return m, m.cmdLoadList(m.listArchived)
	case "n":
		m.startForm(newDraftSubmission(), screenList)
		return m, m.cmdLoadFormCriteria()
	case "enter":
		item, ok := m.currentListItem()
		if !ok {
			m.status = "Нет записей"
			return m, nil
		}
		if m.listArchived {
			m.status = "Архивные записи доступны только в списке"
			return m, nil
		}
		if _, err := m.services.ActivityService.Select(item.ID); err != nil {
			return m.failed(err)
		}
		m.detailRejecting = false
		m.screen = screenDetail
		return m, nil
	}

	return m, nil
}

func (m mainLoopModel) updateFilterInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.filterInputs[m.filterFocus], cmd = m.filterInputs[m.filterFocus].Update(msg)
	m.refreshListLocal()
	return m, cmd
}

func (m mainLoopModel) currentListItem() (models.Activity, bool) {
	if len(m.listItems) == 0 || m.listIdx < 0 || m.listIdx >= len(m.listItems) {
		return models.Activity{}, false
	}
	return m.listItems[m.listIdx], true
}

func (m mainLoopModel) viewList() string {
	title := "ДОСТИЖЕНИЯ"
	if m.listArchived {
		title = "АРХИВ ДОСТИЖЕНИЙ"
	}

	out := ""
	if m.loading {
		out = m.spin.View() + " Загрузка списка..."
		return renderPage(title, out, "esc: назад")
	}

	c := m.currentFilter()
	out += "Фильтр: статус=" + statusFilterLabel(c.Status)
	if c.Term != "" {
		out += " │ поиск=" + c.Term
	}
	if c.Department != "" {
		out += " │ подразделение=" + c.Department
	}
	out += "\n"

	if m.filterMode {
		out += "Поиск          : [" + m.filterInputs[0].View() + "]\n"
		out += "Подразделение  : [" + m.filterInputs[1].View() + "]\n\n"
	}

	if m.status != "" {
		out += "Статус: " + m.status + "\n"
	}
	out += "\n"

	if len(m.listItems) == 0 {
		out += "Записей нет\n"
	} else {
		out += "    │ Наименование             │ Статус          │ Автор\n"
		out += "────┼──────────────────────────┼─────────────────┼────────────────\n"
		for i, item := range m.listItems {
			cursor := " "
			if i == m.listIdx {
				cursor = ">"
			}
			out += fmt.Sprintf(
				"%s %-2d│ %-24s │ %-15s │ %s\n",
				cursor,
				i+1,
				fitText(item.ActivityTitle, 24),
				fitText(activityStatusLabel(item), 15),
				valueOrDash(fitText(item.OwnerName(), 16)),
			)
		}
	}

	hotKeys := "f: фильтр │ s: статус │ x: сброс │ r: обновить │ n: новое │ enter: открыть │ esc: назад"
	if m.filterMode {
		hotKeys = "tab: след. поле │ enter: применить │ esc: закрыть фильтр"
	}
	return renderPage(title, strings.TrimRight(out, "\n"), hotKeys)
}

func statusFilterLabel(s string) string {
	if s == filter.All || s == "" {
		return "все"
	}
	return s
}

func activityStatusLabel(a models.Activity) string {
	if a.IsDraft() {
		return string(models.SaveStatusDraft)
	}
	return string(a.Status)
}

func (m mainLoopModel) cmdLoadList(archived bool) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ActivityService
	c := m.currentFilter()

	return func() tea.Msg {
		if archived {
			items, err := svc.RefreshArchived(ctx)
			return listLoadedMsg{items: items, archived: true, err: err}
		}
		if _, err := svc.Refresh(ctx); err != nil {
			return listLoadedMsg{err: err}
		}
		return listLoadedMsg{items: svc.Filtered(c), archived: false, err: nil}
	}
}
