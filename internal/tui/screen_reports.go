package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-achieve-portal/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// reportStatusOptions narrows the report to one review state; empty covers
// every record.
var reportStatusOptions = []string{
	"",
	string(models.StatusUnderReview),
	string(models.StatusApproved),
	string(models.StatusRejected),
}

func (m *mainLoopModel) initReportInputs() {
	start := textinput.New()
	start.Placeholder = "2026-01-01"
	start.Width = 14
	start.Focus()

	end := textinput.New()
	end.Placeholder = "2026-12-31"
	end.Width = 14

	m.reportInputs = []textinput.Model{start, end}
	m.reportFocus = 0
	m.reportStatusIdx = 0
	m.reportOnList = false
}

func (m mainLoopModel) updateReports(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if !m.reportOnList {
			var cmd tea.Cmd
			m.reportInputs[m.reportFocus], cmd = m.reportInputs[m.reportFocus].Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.screen = screenDashboard
		m.loading = true
		return m, m.cmdLoadDashboard()
	case "tab":
		if m.reportOnList {
			m.reportOnList = false
			m.reportFocus = 0
			m.reportInputs[0].Focus()
			return m, textinput.Blink
		}
		m.reportInputs[m.reportFocus].Blur()
		if m.reportFocus == 0 {
			m.reportFocus = 1
			m.reportInputs[1].Focus()
			return m, nil
		}
		m.reportOnList = true
		return m, nil
	case "ctrl+t":
		m.reportStatusIdx = (m.reportStatusIdx + 1) % len(reportStatusOptions)
		return m, nil
	case "ctrl+g":
		if m.reportBusy {
			return m, nil
		}
		m.reportBusy = true
		m.status = ""
		return m, m.cmdGenerateReport()
	case "ctrl+r":
		m.loading = true
		return m, m.cmdLoadReports()
	case "up":
		if m.reportOnList && m.reportIdx > 0 {
			m.reportIdx--
		}
		if m.reportOnList {
			return m, nil
		}
	case "down":
		if m.reportOnList && m.reportIdx < len(m.reportFiles)-1 {
			m.reportIdx++
		}
		if m.reportOnList {
			return m, nil
		}
	case "enter":
		if m.reportOnList {
			if m.reportIdx >= len(m.reportFiles) {
				return m, nil
			}
			if m.reportBusy {
				return m, nil
			}
			m.reportBusy = true
			return m, m.cmdDownloadReport(m.reportFiles[m.reportIdx].Filename)
		}
	}

	if !m.reportOnList {
		var cmd tea.Cmd
		m.reportInputs[m.reportFocus], cmd = m.reportInputs[m.reportFocus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m mainLoopModel) viewReports() string {
	if m.loading {
		return renderPage("ОТЧЁТЫ", m.spin.View()+" Загрузка...", "esc: назад")
	}

	out := "[ ПАРАМЕТРЫ ]\n"
	out += "Период с  : [" + m.reportInputs[0].View() + "]\n"
	out += "Период по : [" + m.reportInputs[1].View() + "]\n"
	out += "Статус    : " + statusFilterLabel(reportStatusOptions[m.reportStatusIdx]) + "\n"
	if m.reportBusy {
		out += "\nФормирование...\n"
	}
	if m.status != "" {
		out += "\nСтатус: " + m.status + "\n"
	}

	out += "\n[ ГОТОВЫЕ ОТЧЁТЫ ]\n"
	if len(m.reportFiles) == 0 {
		out += "(пусто)\n"
	}
	for i, f := range m.reportFiles {
		cursor := " "
		if m.reportOnList && i == m.reportIdx {
			cursor = ">"
		}
		out += fmt.Sprintf("%s %-40s %s\n", cursor, fitText(f.Filename, 40), valueOrDash(f.CreatedAt))
	}

	return renderPage(
		"ОТЧЁТЫ",
		strings.TrimRight(out, "\n"),
		"ctrl+g: сформировать │ ctrl+t: статус │ tab: поле/список │ enter: скачать │ ctrl+r: обновить │ esc: назад",
	)
}

func (m mainLoopModel) cmdLoadReports() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ReportService

	return func() tea.Msg {
		files, err := svc.Reports(ctx)
		return reportsLoadedMsg{files: files, err: err}
	}
}

func (m mainLoopModel) cmdGenerateReport() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ReportService

	f := models.ReportFilter{
		StartDate: strings.TrimSpace(m.reportInputs[0].Value()),
		EndDate:   strings.TrimSpace(m.reportInputs[1].Value()),
		Status:    reportStatusOptions[m.reportStatusIdx],
	}

	return func() tea.Msg {
		resp, err := svc.Generate(ctx, f)
		return reportGeneratedMsg{resp: resp, err: err}
	}
}

func (m mainLoopModel) cmdDownloadReport(filename string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ReportService

	return func() tea.Msg {
		data, err := svc.Download(ctx, filename)
		if err != nil {
			return reportSavedMsg{err: err}
		}
		if err = os.WriteFile(filename, data, 0o600); err != nil {
			return reportSavedMsg{err: err}
		}
		return reportSavedMsg{path: filename}
	}
}
