package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m mainLoopModel) updateDrafts(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		if m.draftIdx > 0 {
			m.draftIdx--
		}
	case "down":
		if m.draftIdx < len(m.draftItems)-1 {
			m.draftIdx++
		}
	case "r":
		m.loading = true
		return m, m.cmdLoadDrafts()
	case "n":
		m.startForm(newDraftSubmission(), screenDrafts)
		return m, m.cmdLoadFormCriteria()
	case "e", "enter":
		if m.draftIdx >= len(m.draftItems) {
			m.status = "Нет черновиков"
			return m, nil
		}
		return m, m.cmdBeginEdit(m.draftItems[m.draftIdx])
	case "ctrl+d":
		if m.draftIdx >= len(m.draftItems) {
			return m, nil
		}
		draft := m.draftItems[m.draftIdx]
		m.askConfirm("Удалить черновик \""+fitText(draft.ActivityTitle, 30)+"\"?", m.cmdDeleteDraft(draft.ID))
		return m, nil
	}

	return m, nil
}

func (m mainLoopModel) viewDrafts() string {
	out := ""

	if m.loading {
		return renderPage("ЧЕРНОВИКИ", m.spin.View()+" Загрузка...", "esc: назад")
	}

	if m.status != "" {
		out += "Статус: " + m.status + "\n\n"
	}

	if len(m.draftItems) == 0 {
		out += "Черновиков нет\n"
	} else {
		out += "    │ Наименование             │ Изменён\n"
		out += "────┼──────────────────────────┼──────────────────\n"
		for i, item := range m.draftItems {
			cursor := " "
			if i == m.draftIdx {
				cursor = ">"
			}
			out += fmt.Sprintf(
				"%s %-2d│ %-24s │ %s\n",
				cursor,
				i+1,
				fitText(item.ActivityTitle, 24),
				formatTime(item.UpdatedAt),
			)
		}
	}

	return renderPage(
		"ЧЕРНОВИКИ",
		strings.TrimRight(out, "\n"),
		"enter: редактировать │ n: новый │ ctrl+d: удалить │ r: обновить │ esc: назад",
	)
}

func (m mainLoopModel) cmdLoadDrafts() tea.Cmd {
	ctx := m.ctx
	svc := m.services.DraftService

	return func() tea.Msg {
		items, err := svc.Drafts(ctx)
		return draftsLoadedMsg{items: items, err: err}
	}
}

func (m mainLoopModel) cmdDeleteDraft(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.DraftService

	return func() tea.Msg {
		if err := svc.DeleteDraft(ctx, id, func() bool { return true }); err != nil {
			return draftsLoadedMsg{err: err}
		}
		items, err := svc.Drafts(ctx)
		return draftsLoadedMsg{items: items, err: err}
	}
}
