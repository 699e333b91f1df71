// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-achieve-portal/internal/service"
	"github.com/MKhiriev/go-achieve-portal/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formStage int

const (
	formStageNone formStage = iota
	formStageMeta
	formStageCriteria
	formStageFiles
)

func newDraftSubmission() models.Submission {
	return models.Submission{SaveStatus: models.SaveStatusDraft}
}

// startForm opens the creation form prefilled from sub. Edits arrive through
// the draft handoff slot; new records start from an empty submission.
func (m *mainLoopModel) startForm(sub models.Submission, ret screen) {
	title := textinput.New()
	title.Placeholder = "название достижения"
	title.CharLimit = 200
	title.Width = 50
	title.SetValue(sub.Title)
	title.Focus()

	desc := textarea.New()
	desc.Placeholder = "описание"
	desc.SetWidth(54)
	desc.SetHeight(6)
	desc.SetValue(sub.DescriptionHTML)

	path := textinput.New()
	path.Placeholder = "/path/to/file"
	path.Width = 54

	m.formStage = formStageMeta
	m.formReturn = ret
	m.formSub = sub
	m.formTitle = title
	m.formDesc = desc
	m.formMetaFocus = 0
	m.formCriteriaPane = 0
	m.formMainIdx = 0
	m.formSubIdx = 0
	m.formPath = path
	m.formPathFocused = false
	m.formFileIdx = 0
	m.formErr = ""
	m.formSaving = false
	m.screen = screenForm
}

func (m mainLoopModel) closeForm(canceled bool) (tea.Model, tea.Cmd) {
	wasEdit := m.formSub.ID != ""

	m.formStage = formStageNone
	m.formSub = models.Submission{}
	m.formErr = ""
	m.screen = m.formReturn
	m.loading = true

	var reload tea.Cmd
	switch m.formReturn {
	case screenDrafts:
		reload = m.cmdLoadDrafts()
	case screenList:
		reload = m.cmdLoadList(false)
	default:
		reload = m.cmdLoadDashboard()
	}

	if canceled && wasEdit {
		return m, tea.Batch(m.cmdCancelEdit(), reload)
	}
	return m, reload
}

func (m mainLoopModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch keyMsg.String() {
		case "esc":
			return m.closeForm(true)
		case "ctrl+s":
			return m.saveForm(true)
		case "ctrl+o":
			return m.saveForm(false)
		}
	}

	switch m.formStage {
	case formStageMeta:
		return m.updateFormMeta(msg)
	case formStageCriteria:
		return m.updateFormCriteria(msg)
	case formStageFiles:
		return m.updateFormFiles(msg)
	}
	return m, nil
}

func (m mainLoopModel) updateFormMeta(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch keyMsg.String() {
		case "tab", "shift+tab":
			if m.formMetaFocus == 0 {
				m.formMetaFocus = 1
				m.formTitle.Blur()
				m.formDesc.Focus()
			} else {
				m.formMetaFocus = 0
				m.formDesc.Blur()
				m.formTitle.Focus()
			}
			return m, nil
		case "ctrl+n":
			m.formErr = ""
			m.formStage = formStageCriteria
			return m, nil
		case "enter":
			if m.formMetaFocus == 0 {
				m.formMetaFocus = 1
				m.formTitle.Blur()
				m.formDesc.Focus()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	if m.formMetaFocus == 0 {
		m.formTitle, cmd = m.formTitle.Update(msg)
	} else {
		m.formDesc, cmd = m.formDesc.Update(msg)
	}
	return m, cmd
}

func (m mainLoopModel) updateFormCriteria(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return m, nil
	}

	subs := m.formSubsOfSelectedMain()

	switch keyMsg.String() {
	case "backspace", "left":
		if m.formCriteriaPane == 1 {
			m.formCriteriaPane = 0
			m.formSubIdx = 0
		} else {
			m.formStage = formStageMeta
		}
		return m, nil
	case "up":
		if m.formCriteriaPane == 0 && m.formMainIdx > 0 {
			m.formMainIdx--
		}
		if m.formCriteriaPane == 1 && m.formSubIdx > 0 {
			m.formSubIdx--
		}
	case "down":
		if m.formCriteriaPane == 0 && m.formMainIdx < len(m.formMains)-1 {
			m.formMainIdx++
		}
		if m.formCriteriaPane == 1 && m.formSubIdx < len(subs)-1 {
			m.formSubIdx++
		}
	case "enter":
		if m.formCriteriaPane == 0 {
			if len(m.formMains) == 0 {
				m.formErr = "Критерии не загружены"
				return m, nil
			}
			m.formSub.MainCriteriaID = m.formMains[m.formMainIdx].ID
			m.formSub.SubCriteriaID = ""
			m.formCriteriaPane = 1
			m.formSubIdx = 0
			return m, nil
		}
		if len(subs) == 0 {
			m.formErr = "У критерия нет подкритериев"
			return m, nil
		}
		m.formSub.SubCriteriaID = subs[m.formSubIdx].ID
		m.formErr = ""
		m.formStage = formStageFiles
		return m, nil
	}

	return m, nil
}

func (m mainLoopModel) updateFormFiles(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch keyMsg.String() {
		case "backspace":
			if !m.formPathFocused {
				m.formStage = formStageCriteria
				return m, nil
			}
		case "tab":
			m.formPathFocused = !m.formPathFocused
			if m.formPathFocused {
				m.formPath.Focus()
				return m, textinput.Blink
			}
			m.formPath.Blur()
			return m, nil
		case "up":
			if !m.formPathFocused && m.formFileIdx > 0 {
				m.formFileIdx--
			}
			if !m.formPathFocused {
				return m, nil
			}
		case "down":
			if !m.formPathFocused && m.formFileIdx < len(m.formFileRows())-1 {
				m.formFileIdx++
			}
			if !m.formPathFocused {
				return m, nil
			}
		case "enter":
			if m.formPathFocused {
				m.stageFile()
				return m, nil
			}
		case "d":
			if !m.formPathFocused {
				m.dropSelectedFile()
				return m, nil
			}
		case "u":
			if !m.formPathFocused {
				m.restoreSelectedFile()
				return m, nil
			}
		}
	}

	if m.formPathFocused {
		var cmd tea.Cmd
		m.formPath, cmd = m.formPath.Update(msg)
		return m, cmd
	}
	return m, nil
}

type formFileRow struct {
	label   string
	kept    string
	staged  int
	removed string
}

// formFileRows flattens kept, staged and removed attachments into one
// navigable list.
func (m mainLoopModel) formFileRows() []formFileRow {
	rows := make([]formFileRow, 0, len(m.formSub.KeptAttachments)+len(m.formSub.Staged)+len(m.formSub.RemovedAttachments))
	for _, p := range m.formSub.KeptAttachments {
		rows = append(rows, formFileRow{label: p + "  (на сервере)", kept: p, staged: -1})
	}
	for i, f := range m.formSub.Staged {
		rows = append(rows, formFileRow{label: fmt.Sprintf("%s  (%s, новое)", f.Name, formatSize(f.Size)), staged: i})
	}
	for _, p := range m.formSub.RemovedAttachments {
		rows = append(rows, formFileRow{label: p + "  (будет удалено)", removed: p, staged: -1})
	}
	return rows
}

func (m *mainLoopModel) stageFile() {
	path := strings.TrimSpace(m.formPath.Value())
	if path == "" {
		m.formErr = "Нужно указать путь к файлу"
		return
	}

	info, err := os.Stat(path)
	if err != nil {
		m.formErr = "Файл не найден"
		return
	}
	if info.IsDir() {
		m.formErr = "Укажите путь к файлу, а не к папке"
		return
	}

	m.formSub.Staged = append(m.formSub.Staged, models.StagedFile{
		Name: filepath.Base(path),
		Path: path,
		Size: info.Size(),
	})
	m.formPath.SetValue("")
	m.formErr = ""
}

func (m *mainLoopModel) dropSelectedFile() {
	rows := m.formFileRows()
	if m.formFileIdx < 0 || m.formFileIdx >= len(rows) {
		return
	}

	row := rows[m.formFileIdx]
	switch {
	case row.kept != "":
		// Removing a server-side attachment is destructive on submit, so it
		// goes through the same confirmation overlay as the other deletes.
		path := row.kept
		m.askConfirm("Удалить вложение с сервера?", func() tea.Msg {
			return keptAttachmentDropMsg{path: path}
		})
		return
	case row.staged >= 0:
		m.formSub.Staged = append(m.formSub.Staged[:row.staged], m.formSub.Staged[row.staged+1:]...)
	}
	if m.formFileIdx >= len(m.formFileRows()) {
		m.formFileIdx = 0
	}
}

func (m *mainLoopModel) restoreSelectedFile() {
	rows := m.formFileRows()
	if m.formFileIdx < 0 || m.formFileIdx >= len(rows) {
		return
	}
	if row := rows[m.formFileIdx]; row.removed != "" {
		service.RestoreRemovedAttachment(&m.formSub, row.removed)
	}
}

func (m mainLoopModel) saveForm(draft bool) (tea.Model, tea.Cmd) {
	if m.formSaving {
		return m, nil
	}

	sub := m.collectSubmission()
	m.formErr = ""
	m.formSaving = true
	return m, m.cmdSaveForm(sub, draft)
}

func (m mainLoopModel) collectSubmission() models.Submission {
	sub := m.formSub
	sub.Title = strings.TrimSpace(m.formTitle.Value())
	sub.DescriptionHTML = m.formDesc.Value()
	return sub
}

func (m mainLoopModel) viewForm() string {
	switch m.formStage {
	case formStageMeta:
		return m.viewFormMeta()
	case formStageCriteria:
		return m.viewFormCriteria()
	case formStageFiles:
		return m.viewFormFiles()
	}
	return renderPage("НОВОЕ ДОСТИЖЕНИЕ", "", "esc: отмена")
}

func (m mainLoopModel) formTitleLabel() string {
	if m.formSub.ID != "" {
		return "РЕДАКТИРОВАНИЕ ДОСТИЖЕНИЯ"
	}
	return "НОВОЕ ДОСТИЖЕНИЕ"
}

func (m mainLoopModel) viewFormMeta() string {
	out := "[ ОСНОВНОЕ ]\n"
	out += "Название  : [" + m.formTitle.View() + "]\n\n"
	out += "Описание:\n"
	out += m.formDesc.View() + "\n"
	if m.formErr != "" {
		out += "\nОшибка: " + m.formErr + "\n"
	}

	return renderPage(
		m.formTitleLabel()+": ОПИСАНИЕ",
		strings.TrimRight(out, "\n"),
		"tab: перекл. поле │ ctrl+n: далее │ ctrl+s: черновик │ ctrl+o: отправить │ esc: отмена",
	)
}

func (m mainLoopModel) viewFormCriteria() string {
	out := ""

	if m.formCriteriaPane == 0 {
		out += "[ ОСНОВНОЙ КРИТЕРИЙ ]\n"
		if len(m.formMains) == 0 {
			out += "(список пуст)\n"
		}
		for i, mc := range m.formMains {
			cursor := " "
			if i == m.formMainIdx {
				cursor = ">"
			}
			out += fmt.Sprintf("%s %s\n", cursor, mc.Name)
		}
	} else {
		out += "[ ПОДКРИТЕРИЙ ]\n"
		out += "Основной: " + m.formMains[m.formMainIdx].Name + "\n\n"
		subs := m.formSubsOfSelectedMain()
		if len(subs) == 0 {
			out += "(список пуст)\n"
		}
		for i, sc := range subs {
			cursor := " "
			if i == m.formSubIdx {
				cursor = ">"
			}
			out += fmt.Sprintf("%s %s\n", cursor, sc.Name)
		}
	}

	if m.formErr != "" {
		out += "\nОшибка: " + m.formErr + "\n"
	}

	return renderPage(
		m.formTitleLabel()+": КРИТЕРИИ",
		strings.TrimRight(out, "\n"),
		"enter: выбрать │ ↑/↓: навигация │ ←: назад │ ctrl+s: черновик │ esc: отмена",
	)
}

func (m mainLoopModel) viewFormFiles() string {
	out := "[ ВЛОЖЕНИЯ ]\n"
	out += fmt.Sprintf("Занято %d из %d\n\n", m.formSub.AttachmentCount(), models.MaxAttachments)

	rows := m.formFileRows()
	if len(rows) == 0 {
		out += "(нет вложений)\n"
	}
	for i, row := range rows {
		cursor := " "
		if !m.formPathFocused && i == m.formFileIdx {
			cursor = ">"
		}
		out += fmt.Sprintf("%s %s\n", cursor, row.label)
	}

	out += "\nПуть      : [" + m.formPath.View() + "]\n"

	if m.formErr != "" {
		out += "\nОшибка: " + m.formErr + "\n"
	}
	if m.formSaving {
		out += "\nСохранение...\n"
	}

	return renderPage(
		m.formTitleLabel()+": ВЛОЖЕНИЯ",
		strings.TrimRight(out, "\n"),
		"tab: путь/список │ enter: добавить │ d: убрать │ u: вернуть │ ctrl+s: черновик │ ctrl+o: отправить │ esc: отмена",
	)
}

func (m mainLoopModel) formSubsOfSelectedMain() []models.SubCriterion {
	if len(m.formMains) == 0 || m.formMainIdx >= len(m.formMains) {
		return nil
	}
	mainID := m.formMains[m.formMainIdx].ID

	subs := make([]models.SubCriterion, 0, len(m.formSubs))
	for _, s := range m.formSubs {
		if s.BelongsTo(mainID) {
			subs = append(subs, s)
		}
	}
	return subs
}

// syncFormCriteriaSelection points the criteria cursors at the submission's
// current classification after the lists arrive.
func (m *mainLoopModel) syncFormCriteriaSelection() {
	for i, mc := range m.formMains {
		if mc.ID == m.formSub.MainCriteriaID {
			m.formMainIdx = i
			break
		}
	}
	for i, sc := range m.formSubsOfSelectedMain() {
		if sc.ID == m.formSub.SubCriteriaID {
			m.formSubIdx = i
			break
		}
	}
}

func (m mainLoopModel) cmdLoadFormCriteria() tea.Cmd {
	ctx := m.ctx
	svc := m.services.TaxonomyService

	return func() tea.Msg {
		mains, err := svc.MainCriteria(ctx)
		if err != nil {
			return formCriteriaLoadedMsg{err: err}
		}
		subs, err := svc.SubCriteria(ctx)
		return formCriteriaLoadedMsg{mains: mains, subs: subs, err: err}
	}
}

func (m mainLoopModel) cmdSaveForm(sub models.Submission, draft bool) tea.Cmd {
	ctx := m.ctx
	drafts := m.services.DraftService
	activities := m.services.ActivityService

	return func() tea.Msg {
		var err error
		if draft {
			_, err = drafts.SaveDraft(ctx, sub)
		} else {
			_, err = activities.Submit(ctx, sub)
		}
		return formSavedMsg{draft: draft, err: err}
	}
}

func (m mainLoopModel) cmdCancelEdit() tea.Cmd {
	ctx := m.ctx
	svc := m.services.DraftService

	return func() tea.Msg {
		// Best effort: an abandoned edit only leaves a stale handoff slot.
		_ = svc.Cancel(ctx)
		return nil
	}
}
