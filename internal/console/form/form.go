// Package form is the client entry form of the console.
package form

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/onboard/internal/console/styles"
	"github.com/aussiebroadwan/onboard/pkg/registrysdk"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// NoticeDuration is how long the success banner stays visible.
	NoticeDuration = 3 * time.Second

	MsgAdded = "Client added successfully! Welcome email sent."

	requestTimeout = 30 * time.Second
)

// Creator is the slice of the API the form needs.
type Creator interface {
	CreateClient(ctx context.Context, req registrysdk.CreateClientRequest) (*registrysdk.CreateClientResponse, error)
}

// ClientAddedMsg is emitted once the server has accepted a client.
type ClientAddedMsg struct {
	Client registrysdk.Client
	Email  registrysdk.EmailStatus
}

type submittedMsg struct {
	resp *registrysdk.CreateClientResponse
	err  error
}

type dismissMsg struct{ seq int }

type field struct {
	label       string
	placeholder string
}

var fields = []field{
	{"Client Name *", "John Doe"},
	{"Email Address *", "john@example.com"},
	{"Business Name *", "Acme Corporation"},
}

// Model holds the form state. Every transition goes through Update.
type Model struct {
	api     Creator
	inputs  []textinput.Model
	focus   int
	focused bool

	submitting bool
	err        string
	notice     string
	noticeSeq  int
}

func New(api Creator) Model {
	m := Model{api: api, focused: true}

	m.inputs = make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Placeholder = f.placeholder
		ti.Prompt = "› "
		ti.CharLimit = 200
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}

	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Submitting reports whether a create request is in flight.
func (m Model) Submitting() bool { return m.submitting }

// Values returns the current name, email and business name.
func (m Model) Values() (name, email, businessName string) {
	return m.inputs[0].Value(), m.inputs[1].Value(), m.inputs[2].Value()
}

// Err returns the message of the last failed submission.
func (m Model) Err() string { return m.err }

// Notice returns the visible success banner, if any.
func (m Model) Notice() string { return m.notice }

// Focus gives the form keyboard focus.
func (m Model) Focus() Model {
	m.focused = true
	m.inputs[m.focus].Focus()
	return m
}

// Blur releases keyboard focus.
func (m Model) Blur() Model {
	m.focused = false
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submittedMsg:
		return m.handleSubmitted(msg)

	case dismissMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down":
			return m.moveFocus(1), nil
		case "shift+tab", "up":
			return m.moveFocus(-1), nil
		case "ctrl+s":
			return m.submit()
		case "enter":
			if m.focus == len(m.inputs)-1 {
				return m.submit()
			}
			return m.moveFocus(1), nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) moveFocus(delta int) Model {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m Model) submit() (Model, tea.Cmd) {
	m.submitting = true
	m.err = ""
	m.notice = ""

	name, email, business := m.Values()
	req := registrysdk.CreateClientRequest{Name: name, Email: email, BusinessName: business}
	api := m.api

	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		resp, err := api.CreateClient(ctx, req)
		return submittedMsg{resp: resp, err: err}
	}
}

func (m Model) handleSubmitted(msg submittedMsg) (Model, tea.Cmd) {
	m.submitting = false

	if msg.err != nil {
		m.err = errorMessage(msg.err)
		return m, nil
	}

	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m = m.moveFocus(-m.focus)
	if !m.focused {
		m = m.Blur()
	}

	m.notice = MsgAdded
	if !msg.resp.Email.Sent {
		m.notice = "Client added successfully, but the welcome email was not sent: " + msg.resp.Email.ErrorMessage()
	}
	m.noticeSeq++

	added := ClientAddedMsg{Client: msg.resp.Client, Email: msg.resp.Email}
	return m, tea.Batch(
		scheduleDismiss(m.noticeSeq),
		func() tea.Msg { return added },
	)
}

func scheduleDismiss(seq int) tea.Cmd {
	return tea.Tick(NoticeDuration, func(time.Time) tea.Msg {
		return dismissMsg{seq: seq}
	})
}

func errorMessage(err error) string {
	var apiErr *registrysdk.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Add New Client"))
	b.WriteString("\n\n")

	for i, f := range fields {
		b.WriteString(styles.Label.Render(f.label))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}

	if m.err != "" {
		b.WriteString(styles.Error.Render(m.err))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(styles.Success.Render(m.notice))
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString(styles.ButtonDisabled.Render("Adding Client..."))
	} else {
		b.WriteString(styles.Button.Render("Add Client"))
	}
	b.WriteString("\n")
	b.WriteString(styles.Help.Render("tab next field • enter on last field or ctrl+s to submit"))

	return b.String()
}
