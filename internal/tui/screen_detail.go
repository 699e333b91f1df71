// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-achieve-portal/internal/filter"
	"github.com/MKhiriev/go-achieve-portal/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m mainLoopModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	item, ok := m.services.ActivityService.Selected()
	if !ok {
		m.screen = screenList
		return m, nil
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		if m.detailRejecting {
			var cmd tea.Cmd
			m.rejectInput, cmd = m.rejectInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.detailRejecting {
		switch keyMsg.String() {
		case "esc":
			m.detailRejecting = false
			return m, nil
		case "enter":
			reason := m.rejectInput.Value()
			return m, m.cmdReject(item.ID, reason)
		}
		var cmd tea.Cmd
		m.rejectInput, cmd = m.rejectInput.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.services.ActivityService.ClearSelection()
		m.screen = screenList
		m.refreshListLocal()
		return m, nil
	case "c":
		text := filter.StripTags(item.ActivityDescription)
		if strings.TrimSpace(text) == "" {
			m.status = "Нечего копировать"
			return m, nil
		}
		if err := clipboard.WriteAll(text); err != nil {
			return m.failed(err)
		}
		m.status = "Описание скопировано"
		return m, nil
	case "e":
		if !item.IsDraft() {
			return m, nil
		}
		return m, m.cmdBeginEdit(item)
	case "a":
		if !m.user.IsAdmin() {
			return m, nil
		}
		return m, m.cmdReview(item.ID, "approve")
	case "u":
		if !m.user.IsAdmin() {
			return m, nil
		}
		return m, m.cmdReview(item.ID, "reassign")
	case "x":
		if !m.user.IsAdmin() {
			return m, nil
		}
		reason := textinput.New()
		reason.Placeholder = "причина отклонения"
		reason.Width = 50
		reason.Focus()
		m.rejectInput = reason
		m.detailRejecting = true
		return m, textinput.Blink
	case "ctrl+d":
		if !m.user.IsAdmin() {
			return m, nil
		}
		id := item.ID
		m.askConfirm("Удалить \""+fitText(item.ActivityTitle, 30)+"\"?", m.cmdDelete(id))
		return m, nil
	}

	return m, nil
}

func (m mainLoopModel) viewDetail() string {
	item, ok := m.services.ActivityService.Selected()
	if !ok {
		return renderPage("ПРОСМОТР ДОСТИЖЕНИЯ", "Запись не найдена", "esc: назад")
	}

	var b strings.Builder
	b.WriteString("[ ОСНОВНОЕ ]\n")
	b.WriteString("Название      : " + item.ActivityTitle + "\n")
	b.WriteString("Автор         : " + valueOrDash(item.OwnerName()) + "\n")
	b.WriteString("Статус        : " + activityStatusLabel(item) + "\n")
	b.WriteString("Подразделение : " + valueOrDash(models.ResolveLabel(item.Department, models.DepartmentInfo.Label, nil, "")) + "\n")
	b.WriteString("Критерий      : " + refNameOrDash(item.MainCriteria) + " / " + refNameOrDash(item.SubCriteria) + "\n")
	b.WriteString("Создано       : " + formatTime(item.CreatedAt) + "\n")

	if item.Status == models.StatusRejected && item.ReasonForRejection != "" {
		b.WriteString("Причина откл. : " + item.ReasonForRejection + "\n")
	}

	b.WriteString("\n[ ОПИСАНИЕ ]\n")
	desc := strings.TrimSpace(filter.StripTags(item.ActivityDescription))
	if desc == "" {
		b.WriteString("(пусто)\n")
	} else {
		b.WriteString(desc + "\n")
	}

	if len(item.Attachments) > 0 {
		b.WriteString("\n[ ВЛОЖЕНИЯ ]\n")
		for _, path := range item.Attachments {
			b.WriteString("  • " + path + "\n")
		}
	}

	if m.detailRejecting {
		b.WriteString("\nПричина: [" + m.rejectInput.View() + "]\n")
	}

	if m.status != "" {
		b.WriteString("\nСтатус: " + m.status + "\n")
	}

	hotKeys := "c: копир. описание │ esc: назад"
	if item.IsDraft() {
		hotKeys = "e: редактировать │ " + hotKeys
	}
	if m.user.IsAdmin() {
		hotKeys = "a: принять │ u: на рассмотрение │ x: отклонить │ ctrl+d: удалить │ " + hotKeys
	}
	if m.detailRejecting {
		hotKeys = "enter: отклонить │ esc: отмена"
	}

	return renderPage("ДОСТИЖЕНИЕ: "+fitText(item.ActivityTitle, 30), strings.TrimRight(b.String(), "\n"), hotKeys)
}

func refNameOrDash(r models.Ref[models.CriterionInfo]) string {
	name := models.ResolveLabel(r, func(c models.CriterionInfo) string { return c.Name }, nil, "")
	return valueOrDash(name)
}

func (m mainLoopModel) cmdReview(id, action string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ReviewService

	return func() tea.Msg {
		switch action {
		case "approve":
			if err := svc.Approve(ctx, id); err != nil {
				return reviewDoneMsg{err: err}
			}
			return reviewDoneMsg{action: "Достижение принято"}
		case "reassign":
			if err := svc.Reassign(ctx, id); err != nil {
				return reviewDoneMsg{err: err}
			}
			return reviewDoneMsg{action: "Возвращено на рассмотрение"}
		}
		return reviewDoneMsg{}
	}
}

func (m mainLoopModel) cmdReject(id, reason string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ReviewService

	return func() tea.Msg {
		if err := svc.Reject(ctx, id, reason); err != nil {
			return reviewDoneMsg{err: err}
		}
		return reviewDoneMsg{action: "Достижение отклонено"}
	}
}

func (m mainLoopModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ReviewService

	return func() tea.Msg {
		err := svc.Delete(ctx, id, func() bool { return true })
		return deleteDoneMsg{err: err}
	}
}

func (m mainLoopModel) cmdBeginEdit(draft models.Activity) tea.Cmd {
	ctx := m.ctx
	svc := m.services.DraftService

	return func() tea.Msg {
		if err := svc.BeginEdit(ctx, draft); err != nil {
			return editLoadedMsg{err: err}
		}
		sub, ok, err := svc.LoadEdit(ctx)
		return editLoadedMsg{sub: sub, ok: ok, err: err}
	}
}
