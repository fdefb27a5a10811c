package tui

import "github.com/MKhiriev/go-pass-vault/models"

// NavigateTo asks RootModel to switch to Page and, if set, deliver Payload
// to it.
type NavigateTo struct {
	Page    string
	Payload any
}

type sessionStartedMsg struct {
	session models.Session
}

// sessionEndedMsg drops the session and returns to the auth page.
type sessionEndedMsg struct {
	notice string
}

// noticeMsg is shown on the auth page above the form.
type noticeMsg struct {
	text string
}

type authResultMsg struct {
	session models.Session
	err     error
}

type listLoadedMsg struct {
	records []models.VaultRecord
	err     error
}

type savedMsg struct {
	id  string
	err error
}

type deletedMsg struct {
	err error
}

type copiedMsg struct {
	what string
	err  error
}
