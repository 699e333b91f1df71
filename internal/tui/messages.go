package tui

import (
	"github.com/MKhiriev/go-achieve-portal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the root router to another page. An optional Payload
// is re-dispatched to the newly opened page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes the login flow: on success the root router quits the
// program and hands the authenticated user back to the caller.
type LoginResult struct {
	Err  error
	User models.User
}
