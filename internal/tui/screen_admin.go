// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-achieve-portal/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *mainLoopModel) clampAdminIdx() {
	if m.adminUserIdx >= len(m.adminUsers) {
		m.adminUserIdx = 0
	}
	if m.adminSectorIdx >= len(m.adminSectors) {
		m.adminSectorIdx = 0
	}
}

func (m mainLoopModel) updateAdmin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.adminEditing {
		return m.updateAdminEdit(msg)
	}

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
	case "tab":
		m.adminPane = (m.adminPane + 1) % 2
	case "up":
		if m.adminPane == 0 && m.adminUserIdx > 0 {
			m.adminUserIdx--
		}
		if m.adminPane == 1 && m.adminSectorIdx > 0 {
			m.adminSectorIdx--
		}
	case "down":
		if m.adminPane == 0 && m.adminUserIdx < len(m.adminUsers)-1 {
			m.adminUserIdx++
		}
		if m.adminPane == 1 && m.adminSectorIdx < len(m.adminSectors)-1 {
			m.adminSectorIdx++
		}
	case "r":
		m.loading = true
		return m, m.cmdLoadAdmin()
	case "n":
		m.startAdminEdit("")
		return m, textinput.Blink
	case "e":
		if m.adminPane == 0 {
			if m.adminUserIdx >= len(m.adminUsers) {
				return m, nil
			}
			m.startAdminEdit(m.adminUsers[m.adminUserIdx].ID)
		} else {
			if m.adminSectorIdx >= len(m.adminSectors) {
				return m, nil
			}
			m.startAdminEdit(m.adminSectors[m.adminSectorIdx].ID)
		}
		return m, textinput.Blink
	case "t":
		if m.adminPane != 0 || m.adminUserIdx >= len(m.adminUsers) {
			return m, nil
		}
		return m, m.cmdToggleAccount(m.adminUsers[m.adminUserIdx])
	case "ctrl+d":
		if m.adminPane == 0 {
			if m.adminUserIdx >= len(m.adminUsers) {
				return m, nil
			}
			u := m.adminUsers[m.adminUserIdx]
			m.askConfirm("Удалить учётную запись \""+fitText(u.Fullname, 30)+"\"?", m.cmdDeleteUser(u.ID))
		} else {
			if m.adminSectorIdx >= len(m.adminSectors) {
				return m, nil
			}
			s := m.adminSectors[m.adminSectorIdx]
			m.askConfirm("Удалить сектор \""+fitText(s.Sector, 30)+"\"?", m.cmdDeleteSector(s.ID))
		}
		return m, nil
	}

	return m, nil
}

// startAdminEdit opens the inline editor for the active pane. For users an
// empty id creates a new department account (fullname, username, password),
// a non-empty id renames the account. Sectors always edit a single name.
func (m *mainLoopModel) startAdminEdit(id string) {
	m.adminEditID = id
	m.adminFocus = 0
	m.adminSector = 0

	newInput := func(placeholder string) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.Width = 40
		return in
	}

	if m.adminPane == 1 {
		name := newInput("название сектора")
		if id != "" {
			for _, s := range m.adminSectors {
				if s.ID == id {
					name.SetValue(s.Sector)
					break
				}
			}
		}
		name.Focus()
		m.adminInputs = []textinput.Model{name}
		m.adminEditing = true
		return
	}

	if id != "" {
		fullname := newInput("полное название")
		for _, u := range m.adminUsers {
			if u.ID == id {
				fullname.SetValue(u.Fullname)
				break
			}
		}
		fullname.Focus()
		m.adminInputs = []textinput.Model{fullname}
		m.adminEditing = true
		return
	}

	fullname := newInput("полное название")
	fullname.Focus()
	username := newInput("логин")
	password := newInput("пароль")
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	m.adminInputs = []textinput.Model{fullname, username, password}
	m.adminEditing = true
}

func (m mainLoopModel) updateAdminEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.adminEditing = false
			return m, nil
		case "tab":
			m.adminInputs[m.adminFocus].Blur()
			m.adminFocus = (m.adminFocus + 1) % len(m.adminInputs)
			m.adminInputs[m.adminFocus].Focus()
			return m, nil
		case "shift+tab":
			m.adminInputs[m.adminFocus].Blur()
			m.adminFocus = (m.adminFocus - 1 + len(m.adminInputs)) % len(m.adminInputs)
			m.adminInputs[m.adminFocus].Focus()
			return m, nil
		case "left":
			if m.adminSector > 0 {
				m.adminSector--
			}
			return m, nil
		case "right":
			if m.adminSector < len(m.adminSectors)-1 {
				m.adminSector++
			}
			return m, nil
		case "enter":
			return m, m.cmdSaveAdminEdit()
		}
	}

	var cmd tea.Cmd
	m.adminInputs[m.adminFocus], cmd = m.adminInputs[m.adminFocus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) viewAdmin() string {
	if m.loading {
		return renderPage("АДМИНИСТРИРОВАНИЕ", m.spin.View()+" Загрузка...", "esc: назад")
	}

	if m.adminEditing {
		return m.viewAdminEdit()
	}

	out := fmt.Sprintf(
		"Учётных записей: %d │ активных: %d │ неактивных: %d\n",
		m.adminUserStats.TotalUsers,
		m.adminUserStats.ActiveUsers,
		m.adminUserStats.InactiveUsers,
	)
	if m.status != "" {
		out += "Статус: " + m.status + "\n"
	}
	out += "\n"

	paneMark := func(pane int) string {
		if m.adminPane == pane {
			return "▸"
		}
		return " "
	}

	out += paneMark(0) + " [ ПОДРАЗДЕЛЕНИЯ ]\n"
	if len(m.adminUsers) == 0 {
		out += "  (пусто)\n"
	}
	for i, u := range m.adminUsers {
		cursor := " "
		if i == m.adminUserIdx {
			cursor = ">"
		}
		out += fmt.Sprintf(
			"  %s %-28s │ %-10s │ %s\n",
			cursor,
			fitText(u.Fullname, 28),
			fitText(u.Username, 10),
			accountStatusLabel(u.Status),
		)
	}

	out += "\n" + paneMark(1) + " [ СЕКТОРА ]\n"
	if len(m.adminSectors) == 0 {
		out += "  (пусто)\n"
	}
	for i, s := range m.adminSectors {
		cursor := " "
		if m.adminPane == 1 && i == m.adminSectorIdx {
			cursor = ">"
		}
		out += fmt.Sprintf("  %s %s\n", cursor, fitText(s.Sector, 40))
	}

	return renderPage(
		"АДМИНИСТРИРОВАНИЕ",
		strings.TrimRight(out, "\n"),
		"tab: панель │ n: добавить │ e: изменить │ t: акт./деакт. │ ctrl+d: удалить │ esc: назад",
	)
}

func (m mainLoopModel) viewAdminEdit() string {
	if m.adminPane == 1 {
		action := "НОВЫЙ СЕКТОР"
		if m.adminEditID != "" {
			action = "ИЗМЕНЕНИЕ СЕКТОРА"
		}
		out := "Название  : [" + m.adminInputs[0].View() + "]"
		return renderPage(action, out, "enter: сохранить │ esc: отмена")
	}

	if m.adminEditID != "" {
		out := "Название  : [" + m.adminInputs[0].View() + "]"
		return renderPage("ИЗМЕНЕНИЕ ПОДРАЗДЕЛЕНИЯ", out, "enter: сохранить │ esc: отмена")
	}

	sector := "(нет секторов)"
	if m.adminSector < len(m.adminSectors) {
		sector = m.adminSectors[m.adminSector].Sector
	}

	out := "Название  : [" + m.adminInputs[0].View() + "]\n"
	out += "Логин     : [" + m.adminInputs[1].View() + "]\n"
	out += "Пароль    : [" + m.adminInputs[2].View() + "]\n"
	out += "Сектор    : " + sector
	return renderPage("НОВОЕ ПОДРАЗДЕЛЕНИЕ", out, "tab: след. поле │ ←/→: сектор │ enter: сохранить │ esc: отмена")
}

func accountStatusLabel(status string) string {
	switch status {
	case models.AccountActive:
		return "активна"
	case models.AccountInactive:
		return "неактивна"
	default:
		return valueOrDash(status)
	}
}

func (m mainLoopModel) cmdLoadAdmin() tea.Cmd {
	ctx := m.ctx
	svc := m.services.TaxonomyService

	return func() tea.Msg {
		users, err := svc.Users(ctx)
		if err != nil {
			return adminLoadedMsg{err: err}
		}
		sectors, err := svc.Sectors(ctx)
		if err != nil {
			return adminLoadedMsg{err: err}
		}
		stats, err := svc.UserStats(ctx)
		return adminLoadedMsg{users: users, sectors: sectors, stats: stats, err: err}
	}
}

func (m mainLoopModel) cmdSaveAdminEdit() tea.Cmd {
	ctx := m.ctx
	svc := m.services.TaxonomyService

	id := m.adminEditID
	pane := m.adminPane

	var sectorID string
	if m.adminSector < len(m.adminSectors) {
		sectorID = m.adminSectors[m.adminSector].ID
	}

	values := make([]string, len(m.adminInputs))
	for i, in := range m.adminInputs {
		values[i] = strings.TrimSpace(in.Value())
	}

	return func() tea.Msg {
		var err error
		switch {
		case pane == 1 && id == "":
			_, err = svc.AddSector(ctx, values[0])
		case pane == 1:
			_, err = svc.UpdateSector(ctx, id, values[0])
		case id != "":
			_, err = svc.UpdateUser(ctx, id, models.User{Fullname: values[0]})
		default:
			dept := models.User{
				Fullname: values[0],
				Username: values[1],
				Password: values[2],
				Role:     models.RoleUser,
				Sector:   models.NewRef[models.SectorInfo](sectorID),
			}
			_, err = svc.AddDepartment(ctx, dept)
		}
		return adminChangedMsg{err: err}
	}
}

func (m mainLoopModel) cmdToggleAccount(u models.User) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TaxonomyService

	next := models.AccountInactive
	if u.Status == models.AccountInactive {
		next = models.AccountActive
	}

	return func() tea.Msg {
		_, err := svc.ToggleAccountStatus(ctx, u.ID, next)
		return adminChangedMsg{err: err}
	}
}

func (m mainLoopModel) cmdDeleteUser(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TaxonomyService

	return func() tea.Msg {
		return adminChangedMsg{err: svc.DeleteUser(ctx, id, func() bool { return true })}
	}
}

func (m mainLoopModel) cmdDeleteSector(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TaxonomyService

	return func() tea.Msg {
		return adminChangedMsg{err: svc.DeleteSector(ctx, id, func() bool { return true })}
	}
}
