// Package listing renders the registered clients as a table.
package listing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/onboard/internal/console/styles"
	"github.com/aussiebroadwan/onboard/pkg/registrysdk"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	// DateLayout formats the Added On column.
	DateLayout = "January 2, 2006 at 03:04 PM"

	MsgEmpty      = "No clients found. Add your first client above!"
	MsgLoading    = "Loading clients..."
	MsgFetchError = "Failed to fetch clients"

	requestTimeout = 30 * time.Second
)

// Lister is the slice of the API the listing needs.
type Lister interface {
	ListClients(ctx context.Context) (*registrysdk.ListClientsResponse, error)
}

type loadedMsg struct {
	seq     int
	clients []registrysdk.Client
	err     error
}

type Model struct {
	api     Lister
	table   table.Model
	spinner spinner.Model

	clients []registrysdk.Client
	loading bool
	err     string

	refresh int
	seq     int
}

func New(api Lister) Model {
	t := table.New(
		table.WithColumns(columns(100)),
		table.WithHeight(10),
	)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.BorderColor).
		BorderBottom(true).
		Bold(true)
	ts.Selected = ts.Selected.Foreground(styles.PrimaryColor).Bold(true)
	t.SetStyles(ts)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.PrimaryColor)

	return Model{
		api:     api,
		table:   t,
		spinner: sp,
		loading: true,
		seq:     1,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetch(m.api, m.seq))
}

// Clients returns the last loaded clients, newest first.
func (m Model) Clients() []registrysdk.Client { return m.clients }

// Loading reports whether a fetch is in flight.
func (m Model) Loading() bool { return m.loading }

// Err returns the last fetch error message.
func (m Model) Err() string { return m.err }

// SetRefresh records the refresh signal and refetches when it changed.
func (m Model) SetRefresh(n int) (Model, tea.Cmd) {
	if n == m.refresh {
		return m, nil
	}
	m.refresh = n
	return m.Reload()
}

// Reload starts a new fetch. Responses of earlier fetches are dropped.
func (m Model) Reload() (Model, tea.Cmd) {
	m.seq++
	m.err = ""
	if m.loading {
		return m, fetch(m.api, m.seq)
	}
	m.loading = true
	return m, tea.Batch(m.spinner.Tick, fetch(m.api, m.seq))
}

// SetWidth resizes the table columns.
func (m Model) SetWidth(w int) Model {
	m.table.SetColumns(columns(w))
	m.table.SetWidth(w)
	return m
}

// Focus gives the table keyboard focus.
func (m Model) Focus() Model {
	m.table.Focus()
	return m
}

// Blur releases keyboard focus.
func (m Model) Blur() Model {
	m.table.Blur()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = errorMessage(msg.err)
			return m, nil
		}
		m.clients = msg.clients
		m.table.SetRows(rows(msg.clients))
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "r" && m.table.Focused() {
			return m.Reload()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func fetch(api Lister, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		resp, err := api.ListClients(ctx)
		if err != nil {
			return loadedMsg{seq: seq, err: err}
		}
		return loadedMsg{seq: seq, clients: resp.Clients}
	}
}

func errorMessage(err error) string {
	var apiErr *registrysdk.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return MsgFetchError
}

func columns(width int) []table.Column {
	dateW := len("September 30, 2006 at 03:04 PM")
	rest := max(width-dateW-8, 30)
	return []table.Column{
		{Title: "Name", Width: rest * 3 / 10},
		{Title: "Email", Width: rest * 4 / 10},
		{Title: "Business Name", Width: rest * 3 / 10},
		{Title: "Added On", Width: dateW},
	}
}

func rows(clients []registrysdk.Client) []table.Row {
	out := make([]table.Row, 0, len(clients))
	for _, c := range clients {
		out = append(out, table.Row{c.Name, c.Email, c.BusinessName, FormatDate(c.CreatedAt)})
	}
	return out
}

// FormatDate renders t in local time.
func FormatDate(t time.Time) string {
	return t.Local().Format(DateLayout)
}

func (m Model) View() string {
	var b strings.Builder

	title := "All Clients"
	if !m.loading && m.err == "" {
		title = fmt.Sprintf("All Clients (%d)", len(m.clients))
	}
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " " + MsgLoading)
	case m.err != "":
		b.WriteString(styles.Error.Render(m.err))
	case len(m.clients) == 0:
		b.WriteString(styles.Label.Render(MsgEmpty))
	default:
		b.WriteString(m.table.View())
	}

	b.WriteString("\n")
	b.WriteString(styles.Help.Render("r refresh • ↑/↓ scroll"))
	return b.String()
}
