package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type vaultMode int

const (
	vaultModeList vaultMode = iota
	vaultModeSearch
	vaultModeForm
	vaultModeConfirmDelete
)

// VaultModel shows the decrypted working set of one session. Records are
// fetched on Init and after every change; search and sort run locally over
// the fetched set.
type VaultModel struct {
	ctx      context.Context
	sessions service.ClientSessionService
	copier   Copier
	session  models.Session
	logger   *logger.Logger

	records []models.VaultRecord
	visible []models.VaultRecord
	sortIdx int
	search  textinput.Model
	idx     int

	mode    vaultMode
	form    *FormModel
	loading bool
	status  string
	errMsg  string
}

func NewVaultModel(ctx context.Context, sessions service.ClientSessionService, copier Copier, session models.Session, logger *logger.Logger) *VaultModel {
	search := textinput.New()
	search.Placeholder = "type to filter"
	search.Width = 30
	search.Prompt = "/ "

	return &VaultModel{
		ctx:      ctx,
		sessions: sessions,
		copier:   copier,
		session:  session,
		logger:   logger,
		search:   search,
		loading:  true,
	}
}

func (m *VaultModel) Init() tea.Cmd {
	return m.cmdRefresh()
}

func (m *VaultModel) sortOrder() models.SortOrder {
	return models.SortOrders[m.sortIdx%len(models.SortOrders)]
}

// applyView rebuilds the visible list from the working set.
func (m *VaultModel) applyView() {
	sorted := m.sessions.Sort(m.records, m.sortOrder())
	m.visible = m.sessions.Search(sorted, m.search.Value())
	if m.idx >= len(m.visible) {
		m.idx = len(m.visible) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *VaultModel) selected() (models.VaultRecord, bool) {
	if len(m.visible) == 0 {
		return models.VaultRecord{}, false
	}
	return m.visible[m.idx], true
}

func (m *VaultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		m.loading = false
		if sessionOver(msg.err) {
			return m, endSession(noticeSessionExpired)
		}
		var partial *service.PartialDecryptError
		if msg.err != nil && !errors.As(msg.err, &partial) {
			m.logger.Err(msg.err).Str("func", "*VaultModel.Update").Msg("refresh failed")
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = humanizeError(msg.err)
		m.records = msg.records
		m.applyView()
		return m, nil

	case savedMsg:
		if sessionOver(msg.err) {
			return m, endSession(noticeSessionExpired)
		}
		if msg.err != nil {
			if m.form != nil {
				m.form.saving = false
				m.form.errMsg = humanizeError(msg.err)
			}
			return m, nil
		}
		m.closeForm()
		m.status = "Entry saved"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdRefresh()

	case deletedMsg:
		m.mode = vaultModeList
		if sessionOver(msg.err) {
			return m, endSession(noticeSessionExpired)
		}
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Entry deleted"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdRefresh()

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = fmt.Sprintf("%s copied", msg.what)
		if ttl := m.copier.TTL(); ttl > 0 {
			m.status += fmt.Sprintf(", clipboard clears in %s", ttl)
		}
		return m, nil
	}

	switch m.mode {
	case vaultModeForm:
		return m.updateForm(msg)
	case vaultModeSearch:
		return m.updateSearch(msg)
	case vaultModeConfirmDelete:
		return m.updateConfirm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	return m.updateList(keyMsg)
}

func (m *VaultModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.visible)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.search):
		m.mode = vaultModeSearch
		return m, m.search.Focus()
	case key.Matches(msg, keys.esc):
		m.search.SetValue("")
		m.applyView()
	case key.Matches(msg, keys.sort):
		m.sortIdx = (m.sortIdx + 1) % len(models.SortOrders)
		m.applyView()
		m.status = "Sorted by " + string(m.sortOrder())
	case key.Matches(msg, keys.refresh):
		m.loading = true
		m.status = ""
		return m, m.cmdRefresh()
	case key.Matches(msg, keys.newItem):
		return m, m.openForm(models.VaultRecord{})
	case key.Matches(msg, keys.edit):
		if record, ok := m.selected(); ok {
			return m, m.openForm(record)
		}
	case key.Matches(msg, keys.delete):
		if _, ok := m.selected(); ok {
			m.mode = vaultModeConfirmDelete
		}
	case key.Matches(msg, keys.copy):
		if record, ok := m.selected(); ok {
			return m, m.cmdCopy("Password", record.Password)
		}
	case key.Matches(msg, keys.copyUser):
		if record, ok := m.selected(); ok {
			return m, m.cmdCopy("Username", record.Username)
		}
	case key.Matches(msg, keys.logout):
		return m, endSession(noticeLoggedOut)
	}
	return m, nil
}

func (m *VaultModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.search.SetValue("")
			m.search.Blur()
			m.mode = vaultModeList
			m.applyView()
			return m, nil
		case "enter":
			m.search.Blur()
			m.mode = vaultModeList
			return m, nil
		case "up":
			if m.idx > 0 {
				m.idx--
			}
			return m, nil
		case "down":
			if m.idx < len(m.visible)-1 {
				m.idx++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applyView()
	return m, cmd
}

func (m *VaultModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, keys.yes):
		record, ok := m.selected()
		if !ok {
			m.mode = vaultModeList
			return m, nil
		}
		return m, m.cmdDelete(record.ID)
	case key.Matches(keyMsg, keys.no):
		m.mode = vaultModeList
	}
	return m, nil
}

func (m *VaultModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	action, cmd := m.form.Update(msg)
	switch action {
	case formCancel:
		m.closeForm()
		return m, nil
	case formSubmit:
		m.form.saving = true
		return m, m.cmdSave(m.form.Record())
	}
	return m, cmd
}

func (m *VaultModel) openForm(record models.VaultRecord) tea.Cmd {
	m.form = NewFormModel(record)
	m.mode = vaultModeForm
	m.status = ""
	return textinput.Blink
}

func (m *VaultModel) closeForm() {
	m.form = nil
	m.mode = vaultModeList
}

func (m *VaultModel) View() string {
	switch m.mode {
	case vaultModeForm:
		title := "NEW ENTRY"
		if m.form.editing() {
			title = "EDIT ENTRY"
		}
		return renderPage(title, m.form.View(),
			"ctrl+s: save │ esc: cancel │ tab: next field │ ctrl+g: generate │ ctrl+r: show password │ alt+n/s/x: toggles │ alt+= / alt+-: length")
	case vaultModeConfirmDelete:
		record, _ := m.selected()
		return renderPage("DELETE ENTRY", renderConfirm(record), "y: delete │ n: keep")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Signed in as %s │ sort: %s\n", m.session.Email, m.sortOrder()))
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading...\n")
	} else {
		b.WriteString(renderRecordTable(m.visible, m.idx))
		if record, ok := m.selected(); ok {
			b.WriteString("\n")
			b.WriteString(renderRecordDetail(record))
		}
	}
	renderMessages(&b, m.status, m.errMsg)

	help := "/: search │ s: sort │ n: new │ e: edit │ d: delete │ c: copy password │ u: copy username │ r: refresh │ l: logout │ q: quit"
	if m.mode == vaultModeSearch {
		help = "enter: keep filter │ esc: clear filter │ ↑/↓: move"
	}
	return renderPage("VAULT", strings.TrimRight(b.String(), "\n"), help)
}

func (m *VaultModel) cmdRefresh() tea.Cmd {
	ctx, sessions, session := m.ctx, m.sessions, m.session
	return func() tea.Msg {
		records, err := sessions.Refresh(ctx, session, models.ListFilter{})
		return listLoadedMsg{records: records, err: err}
	}
}

func (m *VaultModel) cmdSave(record models.VaultRecord) tea.Cmd {
	ctx, sessions, session := m.ctx, m.sessions, m.session
	return func() tea.Msg {
		id, err := sessions.Save(ctx, session, record)
		return savedMsg{id: id, err: err}
	}
}

func (m *VaultModel) cmdDelete(id string) tea.Cmd {
	ctx, sessions, session := m.ctx, m.sessions, m.session
	return func() tea.Msg {
		return deletedMsg{err: sessions.Delete(ctx, session, id)}
	}
}

func (m *VaultModel) cmdCopy(what, value string) tea.Cmd {
	copier := m.copier
	return func() tea.Msg {
		if value == "" {
			return copiedMsg{what: what, err: fmt.Errorf("%s is empty", strings.ToLower(what))}
		}
		return copiedMsg{what: what, err: copier.Copy(value)}
	}
}

func endSession(notice string) tea.Cmd {
	return func() tea.Msg { return sessionEndedMsg{notice: notice} }
}
