// Package console is the terminal front end of the onboarding registry.
//
// The root Model composes the entry form and the client listing. It owns the
// refresh counter: every accepted client bumps it and the listing refetches.
package console

import (
	"github.com/aussiebroadwan/onboard/internal/console/form"
	"github.com/aussiebroadwan/onboard/internal/console/listing"
	"github.com/aussiebroadwan/onboard/internal/console/styles"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// API is what the console needs from the registry.
type API interface {
	form.Creator
	listing.Lister
}

type pane int

const (
	paneForm pane = iota
	paneList
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(styles.PrimaryColor)
	subtitleStyle = lipgloss.NewStyle().Foreground(styles.SubtleColor).MarginBottom(1)
)

type Model struct {
	form    form.Model
	list    listing.Model
	focus   pane
	refresh int
	width   int
}

func New(api API) Model {
	return Model{
		form: form.New(api),
		list: listing.New(api).Blur(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.form.Init(), m.list.Init())
}

// Refresh returns the refresh counter.
func (m Model) Refresh() int { return m.refresh }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.list = m.list.SetWidth(max(msg.Width-6, 40))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return m.toggleFocus(), nil
		case "ctrl+r":
			var cmd tea.Cmd
			m.list, cmd = m.list.Reload()
			return m, cmd
		case "q":
			if m.focus == paneList {
				return m, tea.Quit
			}
		}
		var cmd tea.Cmd
		if m.focus == paneForm {
			m.form, cmd = m.form.Update(msg)
		} else {
			m.list, cmd = m.list.Update(msg)
		}
		return m, cmd

	case form.ClientAddedMsg:
		m.refresh++
		var cmd tea.Cmd
		m.list, cmd = m.list.SetRefresh(m.refresh)
		return m, cmd
	}

	var formCmd, listCmd tea.Cmd
	m.form, formCmd = m.form.Update(msg)
	m.list, listCmd = m.list.Update(msg)
	return m, tea.Batch(formCmd, listCmd)
}

func (m Model) toggleFocus() Model {
	if m.focus == paneForm {
		m.focus = paneList
		m.form = m.form.Blur()
		m.list = m.list.Focus()
	} else {
		m.focus = paneForm
		m.list = m.list.Blur()
		m.form = m.form.Focus()
	}
	return m
}

func (m Model) View() string {
	formPanel, listPanel := styles.Panel, styles.Panel
	if m.focus == paneForm {
		formPanel = styles.PanelFocused
	} else {
		listPanel = styles.PanelFocused
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("Client Onboarding"),
		subtitleStyle.Render("Manage your accounting firm's clients"),
		formPanel.Render(m.form.View()),
		listPanel.Render(m.list.View()),
		styles.Help.Render("esc switch pane • ctrl+r refresh • ctrl+c quit"),
	)
}
