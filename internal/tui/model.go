// Package tui is the interactive terminal form for configuring credentials
// and placing a call. It only translates field values into workflow calls;
// all state transitions live in internal.Workflow.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/iksnae/ivr-call/internal"
)

type tab int

const (
	configTab tab = iota
	callTab
)

const (
	fieldAccountSID = iota
	fieldAuthToken
	fieldPhoneNumber
)

const (
	focusTarget = iota
	focusScript
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusPending
	statusError
)

// outcomeMsg carries a dispatch result into Update
type outcomeMsg internal.CallOutcome

// Model is the bubbletea model for the form
type Model struct {
	ctx      context.Context
	workflow *internal.Workflow

	active tab
	focus  int

	config [3]textinput.Model
	target textinput.Model
	script textarea.Model

	status     string
	statusKind statusKind
	width      int
}

// New builds the form, pre-filled from the saved settings
func New(ctx context.Context, workflow *internal.Workflow) Model {
	m := Model{
		ctx:        ctx,
		workflow:   workflow,
		status:     "Ready to make calls",
		statusKind: statusInfo,
	}

	labels := [3]string{"AC...", "auth token", "+15551234567"}
	for i := range m.config {
		ti := textinput.New()
		ti.Placeholder = labels[i]
		ti.CharLimit = 128
		ti.Width = 50
		m.config[i] = ti
	}
	m.config[fieldAuthToken].EchoMode = textinput.EchoPassword
	m.config[fieldAuthToken].EchoCharacter = '*'

	m.target = textinput.New()
	m.target.Placeholder = "+15557654321"
	m.target.CharLimit = 32
	m.target.Width = 50

	m.script = textarea.New()
	m.script.SetWidth(80)
	m.script.SetHeight(10)
	m.script.ShowLineNumbers = false
	if sample, err := internal.SampleMenuScript(); err == nil {
		m.script.SetValue(sample)
	}

	if store := workflow.Store(); store != nil {
		record, err := store.Load()
		if err != nil {
			m.setStatus(statusError, fmt.Sprintf("Failed to load configuration: %v", err))
		}
		m.config[fieldAccountSID].SetValue(record.AccountSID)
		m.config[fieldAuthToken].SetValue(record.AuthToken)
		m.config[fieldPhoneNumber].SetValue(record.PhoneNumber)
	}

	m.focusCurrent()
	return m
}

// Run starts the form and blocks until the user quits
func Run(ctx context.Context, workflow *internal.Workflow) error {
	p := tea.NewProgram(New(ctx, workflow), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case outcomeMsg:
		outcome := internal.CallOutcome(msg)
		if outcome.OK() {
			m.setStatus(statusOK, outcome.Message())
		} else {
			m.setStatus(statusError, outcome.Message())
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+q":
			return m, tea.Quit
		case "ctrl+t":
			if m.active == configTab {
				m.active = callTab
			} else {
				m.active = configTab
			}
			m.focus = 0
			return m, m.focusCurrent()
		case "tab":
			m.focus = (m.focus + 1) % m.fieldCount()
			return m, m.focusCurrent()
		case "shift+tab":
			m.focus = (m.focus + m.fieldCount() - 1) % m.fieldCount()
			return m, m.focusCurrent()
		case "ctrl+s":
			m.saveConfiguration()
			return m, nil
		case "ctrl+d":
			return m.initiateCall()
		}
	}

	return m.updateFocused(msg)
}

func (m Model) fieldCount() int {
	if m.active == configTab {
		return len(m.config)
	}
	return 2
}

func (m *Model) focusCurrent() tea.Cmd {
	for i := range m.config {
		m.config[i].Blur()
	}
	m.target.Blur()
	m.script.Blur()

	if m.active == configTab {
		return m.config[m.focus].Focus()
	}
	if m.focus == focusScript {
		return m.script.Focus()
	}
	return m.target.Focus()
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.active == configTab:
		m.config[m.focus], cmd = m.config[m.focus].Update(msg)
	case m.focus == focusScript:
		m.script, cmd = m.script.Update(msg)
	default:
		m.target, cmd = m.target.Update(msg)
	}
	return m, cmd
}

func (m *Model) record() internal.CredentialRecord {
	return internal.CredentialRecord{
		AccountSID:  m.config[fieldAccountSID].Value(),
		AuthToken:   m.config[fieldAuthToken].Value(),
		PhoneNumber: m.config[fieldPhoneNumber].Value(),
	}.Trimmed()
}

func (m *Model) saveConfiguration() {
	err := m.workflow.Configure(m.record())

	var ioErr *internal.ConfigIOError
	switch {
	case err == nil:
		m.setStatus(statusOK, "Configuration saved and Twilio client initialized")
	case errors.Is(err, internal.ErrIncompleteCredentials):
		m.setStatus(statusError, "Please fill in all Twilio credentials!")
	case errors.As(err, &ioErr):
		m.setStatus(statusError, fmt.Sprintf("Twilio client initialized, but saving failed: %v", ioErr.Err))
	default:
		m.setStatus(statusError, fmt.Sprintf("Failed to initialize Twilio client: %v", err))
	}
}

func (m Model) initiateCall() (tea.Model, tea.Cmd) {
	req := internal.CallRequest{
		To:     strings.TrimSpace(m.target.Value()),
		Script: strings.TrimSpace(m.script.Value()),
	}

	ch, err := m.workflow.Dispatch(m.ctx, req)
	switch {
	case err == nil:
		m.setStatus(statusPending, "Initiating call...")
		return m, waitForOutcome(ch)
	case errors.Is(err, internal.ErrNoSession):
		m.setStatus(statusError, "Please configure Twilio credentials first!")
	case errors.Is(err, internal.ErrEmptyDestination):
		m.setStatus(statusError, "Please enter a target phone number!")
	case errors.Is(err, internal.ErrDispatchInProgress):
		m.setStatus(statusPending, "A call is already being initiated...")
	default:
		m.setStatus(statusError, err.Error())
	}
	return m, nil
}

// waitForOutcome receives the dispatch result off the UI goroutine and
// hands it back to Update as a message.
func waitForOutcome(ch <-chan internal.CallOutcome) tea.Cmd {
	return func() tea.Msg {
		return outcomeMsg(<-ch)
	}
}

func (m *Model) setStatus(kind statusKind, text string) {
	m.statusKind = kind
	m.status = text
}
