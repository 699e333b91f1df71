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

var criterionLevels = []models.CriterionLevel{
	models.LevelAll,
	models.LevelSector,
	models.LevelDepartment,
}

func (m *mainLoopModel) clampCriteriaIdx() {
	if m.critMainIdx >= len(m.critMains) {
		m.critMainIdx = 0
	}
	if m.critSubIdx >= len(m.critSubsOfSelectedMain()) {
		m.critSubIdx = 0
	}
}

func (m mainLoopModel) critSubsOfSelectedMain() []models.SubCriterion {
	if len(m.critMains) == 0 || m.critMainIdx >= len(m.critMains) {
		return nil
	}
	mainID := m.critMains[m.critMainIdx].ID

	subs := make([]models.SubCriterion, 0, len(m.critSubs))
	for _, s := range m.critSubs {
		if s.BelongsTo(mainID) {
			subs = append(subs, s)
		}
	}
	return subs
}

func (m mainLoopModel) updateCriteria(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.critEditing {
		return m.updateCriteriaEdit(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	subs := m.critSubsOfSelectedMain()

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.screen = screenDashboard
		m.loading = true
		return m, m.cmdLoadDashboard()
	case "tab":
		m.critPane = (m.critPane + 1) % 2
	case "up":
		if m.critPane == 0 && m.critMainIdx > 0 {
			m.critMainIdx--
			m.critSubIdx = 0
		}
		if m.critPane == 1 && m.critSubIdx > 0 {
			m.critSubIdx--
		}
	case "down":
		if m.critPane == 0 && m.critMainIdx < len(m.critMains)-1 {
			m.critMainIdx++
			m.critSubIdx = 0
		}
		if m.critPane == 1 && m.critSubIdx < len(subs)-1 {
			m.critSubIdx++
		}
	case "r":
		m.loading = true
		return m, m.cmdLoadCriteria()
	case "n":
		m.startCriteriaEdit("")
		return m, textinput.Blink
	case "e":
		if m.critPane == 0 {
			if m.critMainIdx >= len(m.critMains) {
				return m, nil
			}
			m.startCriteriaEdit(m.critMains[m.critMainIdx].ID)
		} else {
			if m.critSubIdx >= len(subs) {
				return m, nil
			}
			m.startCriteriaEdit(subs[m.critSubIdx].ID)
		}
		return m, textinput.Blink
	case "ctrl+d":
		if m.critPane == 0 {
			if m.critMainIdx >= len(m.critMains) {
				return m, nil
			}
			mc := m.critMains[m.critMainIdx]
			m.askConfirm("Удалить критерий \""+fitText(mc.Name, 30)+"\"?", m.cmdDeleteMainCriterion(mc.ID))
		} else {
			if m.critSubIdx >= len(subs) {
				return m, nil
			}
			sc := subs[m.critSubIdx]
			m.askConfirm("Удалить подкритерий \""+fitText(sc.Name, 30)+"\"?", m.cmdDeleteSubCriterion(sc.ID))
		}
		return m, nil
	}

	return m, nil
}

// startCriteriaEdit opens the inline add/rename editor for the active pane.
// An empty id adds a new entry.
func (m *mainLoopModel) startCriteriaEdit(id string) {
	name := textinput.New()
	name.Placeholder = "название"
	name.Width = 40
	name.Focus()

	m.critLevel = models.LevelAll
	m.critScope = 0

	if id != "" {
		if m.critPane == 0 {
			for _, mc := range m.critMains {
				if mc.ID == id {
					name.SetValue(mc.Name)
					m.critLevel = mc.Level
					m.critScope = m.scopeIndexOf(mc)
					break
				}
			}
		} else {
			for _, sc := range m.critSubs {
				if sc.ID == id {
					name.SetValue(sc.Name)
					break
				}
			}
		}
	}

	m.critName = name
	m.critEditID = id
	m.critEditing = true
}

func (m mainLoopModel) scopeIndexOf(mc models.MainCriterion) int {
	switch mc.Level {
	case models.LevelSector:
		for i, s := range m.critSectors {
			if s.ID == mc.Sector.ID() {
				return i
			}
		}
	case models.LevelDepartment:
		for i, u := range m.critUsers {
			if u.ID == mc.DepartmentUser.ID() {
				return i
			}
		}
	}
	return 0
}

func (m mainLoopModel) updateCriteriaEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.critEditing = false
			return m, nil
		case "ctrl+l":
			if m.critPane == 0 {
				for i, lvl := range criterionLevels {
					if lvl == m.critLevel {
						m.critLevel = criterionLevels[(i+1)%len(criterionLevels)]
						break
					}
				}
				m.critScope = 0
			}
			return m, nil
		case "left":
			if m.critPane == 0 && m.critScope > 0 {
				m.critScope--
			}
			return m, nil
		case "right":
			if m.critPane == 0 && m.critScope < m.scopeCount()-1 {
				m.critScope++
			}
			return m, nil
		case "enter":
			return m, m.cmdSaveCriterion()
		}
	}

	var cmd tea.Cmd
	m.critName, cmd = m.critName.Update(msg)
	return m, cmd
}

func (m mainLoopModel) scopeCount() int {
	switch m.critLevel {
	case models.LevelSector:
		return len(m.critSectors)
	case models.LevelDepartment:
		return len(m.critUsers)
	default:
		return 0
	}
}

func (m mainLoopModel) scopeID() string {
	switch m.critLevel {
	case models.LevelSector:
		if m.critScope < len(m.critSectors) {
			return m.critSectors[m.critScope].ID
		}
	case models.LevelDepartment:
		if m.critScope < len(m.critUsers) {
			return m.critUsers[m.critScope].ID
		}
	}
	return ""
}

func (m mainLoopModel) scopeLabel() string {
	switch m.critLevel {
	case models.LevelSector:
		if m.critScope < len(m.critSectors) {
			return m.critSectors[m.critScope].Sector
		}
		return "(нет секторов)"
	case models.LevelDepartment:
		if m.critScope < len(m.critUsers) {
			return m.critUsers[m.critScope].Fullname
		}
		return "(нет подразделений)"
	default:
		return "все"
	}
}

func (m mainLoopModel) viewCriteria() string {
	if m.loading {
		return renderPage("КРИТЕРИИ", m.spin.View()+" Загрузка...", "esc: назад")
	}

	if m.critEditing {
		return m.viewCriteriaEdit()
	}

	out := ""
	if m.status != "" {
		out += "Статус: " + m.status + "\n\n"
	}

	paneMark := func(pane int) string {
		if m.critPane == pane {
			return "▸"
		}
		return " "
	}

	out += paneMark(0) + " [ ОСНОВНЫЕ КРИТЕРИИ ]\n"
	if len(m.critMains) == 0 {
		out += "  (пусто)\n"
	}
	for i, mc := range m.critMains {
		cursor := " "
		if i == m.critMainIdx {
			cursor = ">"
		}
		out += fmt.Sprintf("  %s %-34s [%s]\n", cursor, fitText(mc.Name, 34), levelLabel(mc.Level))
	}

	out += "\n" + paneMark(1) + " [ ПОДКРИТЕРИИ ]\n"
	subs := m.critSubsOfSelectedMain()
	if len(subs) == 0 {
		out += "  (пусто)\n"
	}
	for i, sc := range subs {
		cursor := " "
		if m.critPane == 1 && i == m.critSubIdx {
			cursor = ">"
		}
		out += fmt.Sprintf("  %s %s\n", cursor, fitText(sc.Name, 40))
	}

	return renderPage(
		"КРИТЕРИИ",
		strings.TrimRight(out, "\n"),
		"tab: панель │ n: добавить │ e: изменить │ ctrl+d: удалить │ r: обновить │ esc: назад",
	)
}

func (m mainLoopModel) viewCriteriaEdit() string {
	action := "ДОБАВЛЕНИЕ"
	if m.critEditID != "" {
		action = "ИЗМЕНЕНИЕ"
	}
	kind := "ОСНОВНОЙ КРИТЕРИЙ"
	if m.critPane == 1 {
		kind = "ПОДКРИТЕРИЙ"
	}

	out := "Название  : [" + m.critName.View() + "]\n"
	if m.critPane == 0 {
		out += "Уровень   : " + levelLabel(m.critLevel) + "\n"
		if m.critLevel != models.LevelAll {
			out += "Область   : " + m.scopeLabel() + "\n"
		}
	} else if m.critMainIdx < len(m.critMains) {
		out += "Основной  : " + m.critMains[m.critMainIdx].Name + "\n"
	}

	hotKeys := "enter: сохранить │ esc: отмена"
	if m.critPane == 0 {
		hotKeys = "ctrl+l: уровень │ ←/→: область │ " + hotKeys
	}
	return renderPage(action+": "+kind, strings.TrimRight(out, "\n"), hotKeys)
}

func levelLabel(l models.CriterionLevel) string {
	switch l {
	case models.LevelAll:
		return "все"
	case models.LevelSector:
		return "сектор"
	case models.LevelDepartment:
		return "подразделение"
	default:
		return string(l)
	}
}

func (m mainLoopModel) cmdLoadCriteria() tea.Cmd {
	ctx := m.ctx
	svc := m.services.TaxonomyService

	return func() tea.Msg {
		mains, err := svc.MainCriteria(ctx)
		if err != nil {
			return criteriaLoadedMsg{err: err}
		}
		subs, err := svc.SubCriteria(ctx)
		if err != nil {
			return criteriaLoadedMsg{err: err}
		}
		sectors, err := svc.Sectors(ctx)
		if err != nil {
			return criteriaLoadedMsg{err: err}
		}
		users, err := svc.Users(ctx)
		return criteriaLoadedMsg{mains: mains, subs: subs, sectors: sectors, users: users, err: err}
	}
}

func (m mainLoopModel) cmdSaveCriterion() tea.Cmd {
	ctx := m.ctx
	svc := m.services.TaxonomyService

	name := strings.TrimSpace(m.critName.Value())
	id := m.critEditID
	pane := m.critPane
	level := m.critLevel
	scopeID := m.scopeID()

	var mainID string
	if pane == 1 && m.critMainIdx < len(m.critMains) {
		mainID = m.critMains[m.critMainIdx].ID
	}

	return func() tea.Msg {
		var err error
		switch {
		case pane == 1 && id == "":
			_, err = svc.AddSubCriterion(ctx, models.AddSubCriterionRequest{Name: name, MainCriteria: mainID})
		case pane == 1:
			_, err = svc.UpdateSubCriterion(ctx, id, name)
		case id == "":
			req := models.AddMainCriterionRequest{Name: name, Level: level}
			switch level {
			case models.LevelSector:
				req.Sector = scopeID
			case models.LevelDepartment:
				req.DepartmentUser = scopeID
			}
			_, err = svc.AddMainCriterion(ctx, req)
		default:
			req := models.UpdateMainCriterionRequest{ID: id, Name: name, Level: level}
			switch level {
			case models.LevelSector:
				req.Sector = &scopeID
			case models.LevelDepartment:
				req.DepartmentUser = &scopeID
			}
			_, err = svc.UpdateMainCriterion(ctx, req)
		}
		return criteriaChangedMsg{err: err}
	}
}

func (m mainLoopModel) cmdDeleteMainCriterion(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TaxonomyService

	return func() tea.Msg {
		return criteriaChangedMsg{err: svc.DeleteMainCriterion(ctx, id, func() bool { return true })}
	}
}

func (m mainLoopModel) cmdDeleteSubCriterion(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TaxonomyService

	return func() tea.Msg {
		return criteriaChangedMsg{err: svc.DeleteSubCriterion(ctx, id, func() bool { return true })}
	}
}
