package form

import (
	"context"
	"sync"
	"testing"

	"github.com/aussiebroadwan/onboard/pkg/registrysdk"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

type fakeCreator struct {
	mu   sync.Mutex
	got  []registrysdk.CreateClientRequest
	resp *registrysdk.CreateClientResponse
	err  error
}

func (f *fakeCreator) CreateClient(_ context.Context, req registrysdk.CreateClientRequest) (*registrysdk.CreateClientResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.got = append(f.got, req)
	return f.resp, f.err
}

func sentResponse(req registrysdk.CreateClientRequest) *registrysdk.CreateClientResponse {
	return &registrysdk.CreateClientResponse{
		Message: "Client added successfully",
		Client:  registrysdk.Client{ID: "01J0", Name: req.Name, Email: req.Email, BusinessName: req.BusinessName},
		Email:   registrysdk.EmailStatus{Sent: true, To: req.Email},
	}
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func fill(m Model, name, email, business string) Model {
	m = typeText(m, name)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(m, email)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	return typeText(m, business)
}

func TestForm_FocusCycles(t *testing.T) {
	m := New(&fakeCreator{})
	require.Equal(t, 0, m.focus)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, 1, m.focus)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, 0, m.focus, "tab wraps to the first field")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, 2, m.focus, "shift+tab wraps to the last field")
	require.True(t, m.inputs[2].Focused())
	require.False(t, m.inputs[0].Focused())
}

func TestForm_EnterAdvancesBeforeLastField(t *testing.T) {
	api := &fakeCreator{}
	m := New(api)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, cmd)
	require.Equal(t, 1, m.focus)
	require.False(t, m.Submitting())
	require.Empty(t, api.got)
}

func TestForm_SubmitSuccess(t *testing.T) {
	api := &fakeCreator{}
	api.resp = sentResponse(registrysdk.CreateClientRequest{Name: "Jane", Email: "jane@acme.test", BusinessName: "Acme"})

	m := fill(New(api), "Jane", "jane@acme.test", "Acme")
	name, email, business := m.Values()
	require.Equal(t, "Jane", name)
	require.Equal(t, "jane@acme.test", email)
	require.Equal(t, "Acme", business)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.True(t, m.Submitting())
	require.Contains(t, m.View(), "Adding Client...")

	msg := cmd()
	require.Len(t, api.got, 1)
	require.Equal(t, registrysdk.CreateClientRequest{Name: "Jane", Email: "jane@acme.test", BusinessName: "Acme"}, api.got[0])

	m, cmd = m.Update(msg)
	require.False(t, m.Submitting())
	require.Equal(t, MsgAdded, m.Notice())
	require.Empty(t, m.Err())
	require.Equal(t, 0, m.focus)

	name, email, business = m.Values()
	require.Empty(t, name+email+business, "fields are cleared")

	// The dismiss tick blocks for NoticeDuration, so only the batch shape is
	// inspected here and the emitted message is taken from the second command.
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	require.Len(t, batch, 2)
	added, ok := batch[1]().(ClientAddedMsg)
	require.True(t, ok)
	require.Equal(t, "Jane", added.Client.Name)
	require.True(t, added.Email.Sent)
}

func TestForm_SubmitWithCtrlS(t *testing.T) {
	api := &fakeCreator{resp: sentResponse(registrysdk.CreateClientRequest{Name: "A"})}
	m := typeText(New(api), "A")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	require.True(t, m.Submitting())
}

func TestForm_KeysIgnoredWhileSubmitting(t *testing.T) {
	api := &fakeCreator{resp: sentResponse(registrysdk.CreateClientRequest{})}
	m := typeText(New(api), "Jane")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.True(t, m.Submitting())

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	require.Nil(t, cmd)
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.Nil(t, cmd)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})

	name, _, _ := m.Values()
	require.Equal(t, "Jane", name)
	require.Equal(t, 0, m.focus)
}

func TestForm_SubmitFailureShowsServerMessage(t *testing.T) {
	api := &fakeCreator{err: &registrysdk.APIError{StatusCode: 409, Message: "A client with this email already exists"}}
	m := fill(New(api), "Jane", "jane@acme.test", "Acme")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd = m.Update(cmd())

	require.Nil(t, cmd)
	require.False(t, m.Submitting())
	require.Equal(t, "A client with this email already exists", m.Err())
	require.Empty(t, m.Notice())
	require.Contains(t, m.View(), "A client with this email already exists")

	name, _, _ := m.Values()
	require.Equal(t, "Jane", name, "input is kept on failure")
}

func TestForm_SubmitFailureWithoutMessage(t *testing.T) {
	api := &fakeCreator{err: context.DeadlineExceeded}
	m := New(api)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m, _ = m.Update(cmd())

	require.Equal(t, context.DeadlineExceeded.Error(), m.Err())
}

func TestForm_EmailFailureNote(t *testing.T) {
	reason := "provider unavailable"
	resp := sentResponse(registrysdk.CreateClientRequest{Name: "Jane"})
	resp.Email = registrysdk.EmailStatus{Sent: false, To: "jane@acme.test", Error: &reason}

	m := New(&fakeCreator{resp: resp})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m, _ = m.Update(cmd())

	require.Contains(t, m.Notice(), "welcome email was not sent")
	require.Contains(t, m.Notice(), reason)
}

func TestForm_DismissOnlyLatestNotice(t *testing.T) {
	m := New(&fakeCreator{})
	m.notice = MsgAdded
	m.noticeSeq = 2

	m, _ = m.Update(dismissMsg{seq: 1})
	require.Equal(t, MsgAdded, m.Notice(), "stale dismiss is ignored")

	m, _ = m.Update(dismissMsg{seq: 2})
	require.Empty(t, m.Notice())
}

func TestForm_BlurAndFocus(t *testing.T) {
	m := New(&fakeCreator{}).Blur()
	for _, in := range m.inputs {
		require.False(t, in.Focused())
	}

	m = m.Focus()
	require.True(t, m.inputs[0].Focused())
}

func TestForm_ViewLabels(t *testing.T) {
	view := New(&fakeCreator{}).View()
	for _, s := range []string{"Add New Client", "Client Name *", "Email Address *", "Business Name *", "Add Client"} {
		require.Contains(t, view, s)
	}
}
