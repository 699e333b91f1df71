package tui

import (
	"context"

	"github.com/MKhiriev/go-achieve-portal/internal/service"
	"github.com/MKhiriev/go-achieve-portal/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenDashboard screen = iota
	screenList
	screenDetail
	screenForm
	screenDrafts
	screenNotifications
	screenCriteria
	screenAdmin
	screenReports
)

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	user     models.User

	screen  screen
	spin    spinner.Model
	loading bool
	status  string
	logout  bool

	showError    bool
	errorOverlay errorOverlayModel
	showConfirm  bool
	confirm      confirmModel
	confirmCmd   tea.Cmd

	push   <-chan models.Notification
	unread int

	// dashboard
	stats  models.ActivityStats
	recent []models.RecentAchievement

	// achievements list
	listItems    []models.Activity
	listIdx      int
	listArchived bool
	filterMode   bool
	filterInputs []textinput.Model
	filterFocus  int
	filterStatus int

	// detail
	detailRejecting bool
	rejectInput     textinput.Model

	// creation/edit form
	formStage        formStage
	formReturn       screen
	formSub          models.Submission
	formTitle        textinput.Model
	formDesc         textarea.Model
	formMetaFocus    int
	formMains        []models.MainCriterion
	formSubs         []models.SubCriterion
	formCriteriaPane int
	formMainIdx      int
	formSubIdx       int
	formPath         textinput.Model
	formPathFocused  bool
	formFileIdx      int
	formErr          string
	formSaving       bool

	// drafts
	draftItems []models.Activity
	draftIdx   int

	// notifications
	notifItems  []models.Notification
	notifBucket int
	notifIdx    int

	// criteria administration
	critMains   []models.MainCriterion
	critSubs    []models.SubCriterion
	critSectors []models.Sector
	critUsers   []models.User
	critPane    int
	critMainIdx int
	critSubIdx  int
	critEditing bool
	critEditID  string
	critName    textinput.Model
	critLevel   models.CriterionLevel
	critScope   int

	// accounts and sectors administration
	adminPane      int
	adminUsers     []models.User
	adminSectors   []models.Sector
	adminUserStats models.UserStats
	adminUserIdx   int
	adminSectorIdx int
	adminEditing   bool
	adminEditID    string
	adminInputs    []textinput.Model
	adminFocus     int
	adminSector    int

	// reports
	reportInputs    []textinput.Model
	reportFocus     int
	reportStatusIdx int
	reportFiles     []models.ReportFile
	reportIdx       int
	reportOnList    bool
	reportBusy      bool
}

type dashboardLoadedMsg struct {
	stats  models.ActivityStats
	recent []models.RecentAchievement
	err    error
}

type listLoadedMsg struct {
	items    []models.Activity
	archived bool
	err      error
}

type reviewDoneMsg struct {
	action string
	err    error
}

type deleteDoneMsg struct {
	err error
}

type draftsLoadedMsg struct {
	items []models.Activity
	err   error
}

type editLoadedMsg struct {
	sub models.Submission
	ok  bool
	err error
}

type formCriteriaLoadedMsg struct {
	mains []models.MainCriterion
	subs  []models.SubCriterion
	err   error
}

type formSavedMsg struct {
	draft bool
	err   error
}

// keptAttachmentDropMsg arrives after the user confirms removing an
// already-on-server attachment from the creation form.
type keptAttachmentDropMsg struct {
	path string
}

type notificationsLoadedMsg struct {
	err error
}

type notificationsChangedMsg struct {
	err error
}

type pushReceivedMsg struct {
	note models.Notification
}

type criteriaLoadedMsg struct {
	mains   []models.MainCriterion
	subs    []models.SubCriterion
	sectors []models.Sector
	users   []models.User
	err     error
}

type criteriaChangedMsg struct {
	err error
}

type adminLoadedMsg struct {
	users   []models.User
	sectors []models.Sector
	stats   models.UserStats
	err     error
}

type adminChangedMsg struct {
	err error
}

type reportsLoadedMsg struct {
	files []models.ReportFile
	err   error
}

type reportGeneratedMsg struct {
	resp models.ReportResponse
	err  error
}

type reportSavedMsg struct {
	path string
	err  error
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, user models.User) mainLoopModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return mainLoopModel{
		ctx:      ctx,
		services: services,
		user:     user,
		spin:     s,
		loading:  true,
		push:     services.NotificationService.Subscribe(),
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.cmdLoadDashboard(), m.cmdLoadNotifications(), m.cmdWaitPush())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case pushReceivedMsg:
		m.unread = m.services.NotificationService.UnreadCount()
		m.refreshNotifLocal()
		m.status = "Новое уведомление: " + msg.note.Title
		return m, m.cmdWaitPush()

	case dashboardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.failed(msg.err)
		}
		m.stats = msg.stats
		m.recent = msg.recent
		return m, nil

	case listLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.failed(msg.err)
		}
		m.listArchived = msg.archived
		m.listItems = msg.items
		m.clampListIdx()
		return m, nil

	case reviewDoneMsg:
		if msg.err != nil {
			return m.failed(msg.err)
		}
		m.detailRejecting = false
		m.status = msg.action
		m.refreshListLocal()
		return m, nil

	case deleteDoneMsg:
		if msg.err != nil {
			return m.failed(msg.err)
		}
		m.status = "Запись удалена"
		m.screen = screenList
		m.refreshListLocal()
		return m, nil

	case draftsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.failed(msg.err)
		}
		m.draftItems = msg.items
		if m.draftIdx >= len(m.draftItems) {
			m.draftIdx = 0
		}
		return m, nil

	case editLoadedMsg:
		if msg.err != nil {
			return m.failed(msg.err)
		}
		sub := msg.sub
		if !msg.ok {
			sub = models.Submission{}
		}
		ret := screenDrafts
		if m.screen == screenDetail {
			m.services.ActivityService.ClearSelection()
			ret = screenList
		}
		m.startForm(sub, ret)
		return m, m.cmdLoadFormCriteria()

	case formCriteriaLoadedMsg:
		if msg.err != nil {
			return m.failed(msg.err)
		}
		m.formMains = msg.mains
		m.formSubs = msg.subs
		m.syncFormCriteriaSelection()
		return m, nil

	case formSavedMsg:
		m.formSaving = false
		if msg.err != nil {
			m.formErr = humanizeServerUnavailableError(msg.err)
			if sessionExpired(msg.err) {
				return m.failed(msg.err)
			}
			return m, nil
		}
		if msg.draft {
			m.status = "Черновик сохранён"
		} else {
			m.status = "Достижение отправлено на рассмотрение"
		}
		return m.closeForm(false)

	case keptAttachmentDropMsg:
		service.RemoveKeptAttachment(&m.formSub, msg.path, func() bool { return true })
		if m.formFileIdx >= len(m.formFileRows()) {
			m.formFileIdx = 0
		}
		return m, nil

	case notificationsLoadedMsg, notificationsChangedMsg:
		var err error
		switch v := msg.(type) {
		case notificationsLoadedMsg:
			err = v.err
		case notificationsChangedMsg:
			err = v.err
		}
		m.loading = false
		if err != nil {
			return m.failed(err)
		}
		m.unread = m.services.NotificationService.UnreadCount()
		m.refreshNotifLocal()
		return m, nil

	case criteriaLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.failed(msg.err)
		}
		m.critMains = msg.mains
		m.critSubs = msg.subs
		m.critSectors = msg.sectors
		m.critUsers = msg.users
		m.clampCriteriaIdx()
		return m, nil

	case criteriaChangedMsg:
		if msg.err != nil {
			return m.failed(msg.err)
		}
		m.critEditing = false
		m.status = "Изменения сохранены"
		m.loading = true
		return m, m.cmdLoadCriteria()

	case adminLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.failed(msg.err)
		}
		m.adminUsers = msg.users
		m.adminSectors = msg.sectors
		m.adminUserStats = msg.stats
		m.clampAdminIdx()
		return m, nil

	case adminChangedMsg:
		if msg.err != nil {
			return m.failed(msg.err)
		}
		m.adminEditing = false
		m.status = "Изменения сохранены"
		m.loading = true
		return m, m.cmdLoadAdmin()

	case reportsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.failed(msg.err)
		}
		m.reportFiles = msg.files
		if m.reportIdx >= len(m.reportFiles) {
			m.reportIdx = 0
		}
		return m, nil

	case reportGeneratedMsg:
		m.reportBusy = false
		if msg.err != nil {
			return m.failed(msg.err)
		}
		m.status = "Отчёт сформирован: " + valueOrDash(msg.resp.Filename)
		m.loading = true
		return m, m.cmdLoadReports()

	case reportSavedMsg:
		m.reportBusy = false
		if msg.err != nil {
			return m.failed(msg.err)
		}
		m.status = "Файл сохранён: " + msg.path
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.showError {
			if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(keyMsg, keys.yes) {
				m.showConfirm = false
				cmd := m.confirmCmd
				m.confirmCmd = nil
				return m, cmd
			}
			if key.Matches(keyMsg, keys.no) {
				m.showConfirm = false
				m.confirmCmd = nil
			}
			return m, nil
		}
		if keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	switch m.screen {
	case screenDashboard:
		return m.updateDashboard(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenDrafts:
		return m.updateDrafts(msg)
	case screenNotifications:
		return m.updateNotifications(msg)
	case screenCriteria:
		return m.updateCriteria(msg)
	case screenAdmin:
		return m.updateAdmin(msg)
	case screenReports:
		return m.updateReports(msg)
	}

	return m, nil
}

func (m mainLoopModel) View() string {
	var page string

	switch m.screen {
	case screenDashboard:
		page = m.viewDashboard()
	case screenList:
		page = m.viewList()
	case screenDetail:
		page = m.viewDetail()
	case screenForm:
		page = m.viewForm()
	case screenDrafts:
		page = m.viewDrafts()
	case screenNotifications:
		page = m.viewNotifications()
	case screenCriteria:
		page = m.viewCriteria()
	case screenAdmin:
		page = m.viewAdmin()
	case screenReports:
		page = m.viewReports()
	}

	if m.showError {
		return page + "\n\n" + m.errorOverlay.View()
	}
	if m.showConfirm {
		return page + "\n\n" + m.confirm.View()
	}
	return page
}

// failed routes an async error either into the error overlay or, for an
// expired session, into a forced sign-out of the whole main loop.
func (m mainLoopModel) failed(err error) (tea.Model, tea.Cmd) {
	m.loading = false
	m.formSaving = false
	m.reportBusy = false
	if sessionExpired(err) {
		m.logout = true
		return m, tea.Quit
	}
	m.showError = true
	m.errorOverlay.message = humanizeServerUnavailableError(err)
	return m, nil
}

func (m *mainLoopModel) askConfirm(message string, cmd tea.Cmd) {
	m.showConfirm = true
	m.confirm = confirmModel{message: message}
	m.confirmCmd = cmd
}

func (m mainLoopModel) cmdWaitPush() tea.Cmd {
	ch := m.push
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		note, ok := <-ch
		if !ok {
			return nil
		}
		return pushReceivedMsg{note: note}
	}
}

func (m mainLoopModel) cmdLoadDashboard() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ActivityService

	return func() tea.Msg {
		stats, err := svc.Stats(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		recent, err := svc.Recent(ctx)
		return dashboardLoadedMsg{stats: stats, recent: recent, err: err}
	}
}

func (m mainLoopModel) cmdLoadNotifications() tea.Cmd {
	ctx := m.ctx
	feed := m.services.NotificationService

	return func() tea.Msg {
		return notificationsLoadedMsg{err: feed.Load(ctx)}
	}
}
