package tui

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iksnae/ivr-call/internal"
)

func newTestModel(t *testing.T, stub *internal.StubCaller) (Model, *internal.Workflow) {
	t.Helper()
	store := internal.NewSettingsStore(filepath.Join(t.TempDir(), "ivr_config.json"))
	w := internal.NewWorkflow(store, internal.NewDispatcher(0), internal.StubFactory(stub, nil))
	return New(context.Background(), w), w
}

func press(t *testing.T, m Model, key tea.KeyType) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: key})
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func fillCredentials(m *Model, record internal.CredentialRecord) {
	m.config[fieldAccountSID].SetValue(record.AccountSID)
	m.config[fieldAuthToken].SetValue(record.AuthToken)
	m.config[fieldPhoneNumber].SetValue(record.PhoneNumber)
}

func TestNew_PrefillsSavedSettings(t *testing.T) {
	store := internal.NewSettingsStore(filepath.Join(t.TempDir(), "ivr_config.json"))
	require.NoError(t, store.Save(internal.CreateTestRecord()))
	w := internal.NewWorkflow(store, nil, internal.StubFactory(&internal.StubCaller{}, nil))

	m := New(context.Background(), w)
	assert.Equal(t, "AC1", m.config[fieldAccountSID].Value())
	assert.Equal(t, "tok", m.config[fieldAuthToken].Value())
	assert.Equal(t, "+15551234567", m.config[fieldPhoneNumber].Value())
	assert.Contains(t, m.script.Value(), "<Gather")
	assert.Equal(t, internal.StateUnconfigured, w.State(), "loading does not activate a session")
}

func TestSave_IncompleteCredentials(t *testing.T) {
	m, w := newTestModel(t, &internal.StubCaller{})
	fillCredentials(&m, internal.CredentialRecord{AccountSID: "AC1"})

	m, _ = press(t, m, tea.KeyCtrlS)
	assert.Equal(t, statusError, m.statusKind)
	assert.Equal(t, "Please fill in all Twilio credentials!", m.status)
	assert.Equal(t, internal.StateUnconfigured, w.State())
}

func TestSave_ActivatesAndPersists(t *testing.T) {
	m, w := newTestModel(t, &internal.StubCaller{})
	fillCredentials(&m, internal.CreateTestRecord())

	m, _ = press(t, m, tea.KeyCtrlS)
	assert.Equal(t, statusOK, m.statusKind)
	assert.Equal(t, internal.StateReady, w.State())

	saved, err := w.Store().Load()
	require.NoError(t, err)
	assert.Equal(t, internal.CreateTestRecord(), saved)
}

func TestCall_BeforeConfigure(t *testing.T) {
	stub := &internal.StubCaller{CallID: "CA1"}
	m, _ := newTestModel(t, stub)
	m, _ = press(t, m, tea.KeyCtrlT)
	m.target.SetValue("+15557654321")

	m, cmd := press(t, m, tea.KeyCtrlD)
	assert.Nil(t, cmd)
	assert.Equal(t, "Please configure Twilio credentials first!", m.status)
	assert.Empty(t, stub.Calls())
}

func TestCall_EmptyTarget(t *testing.T) {
	m, _ := newTestModel(t, &internal.StubCaller{})
	fillCredentials(&m, internal.CreateTestRecord())
	m, _ = press(t, m, tea.KeyCtrlS)

	m, cmd := press(t, m, tea.KeyCtrlD)
	assert.Nil(t, cmd)
	assert.Equal(t, "Please enter a target phone number!", m.status)
}

func TestCall_DeliversOutcomeThroughUpdate(t *testing.T) {
	stub := &internal.StubCaller{CallID: "CA999"}
	m, w := newTestModel(t, stub)
	fillCredentials(&m, internal.CreateTestRecord())
	m, _ = press(t, m, tea.KeyCtrlS)
	m, _ = press(t, m, tea.KeyCtrlT)
	m.target.SetValue("+15557654321")
	m.script.SetValue("<Response><Say>hi</Say></Response>")

	m, cmd := press(t, m, tea.KeyCtrlD)
	require.NotNil(t, cmd)
	assert.Equal(t, statusPending, m.statusKind)
	assert.Equal(t, "Initiating call...", m.status)

	msg := cmd()
	next, _ := m.Update(msg)
	m = next.(Model)

	assert.Equal(t, statusOK, m.statusKind)
	assert.Equal(t, "Call initiated! SID: CA999", m.status)
	assert.Equal(t, internal.StateReady, w.State())

	calls := stub.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "<Response><Say>hi</Say></Response>", calls[0].Twiml)
}

func TestCall_FailureShowsReason(t *testing.T) {
	stub := &internal.StubCaller{Err: errors.New("Unable to create record: invalid 'To' number")}
	m, _ := newTestModel(t, stub)
	fillCredentials(&m, internal.CreateTestRecord())
	m, _ = press(t, m, tea.KeyCtrlS)
	m.target.SetValue("garbage")

	m, cmd := press(t, m, tea.KeyCtrlD)
	require.NotNil(t, cmd)
	next, _ := m.Update(cmd())
	m = next.(Model)

	assert.Equal(t, statusError, m.statusKind)
	assert.Equal(t, "Call failed: Unable to create record: invalid 'To' number", m.status)
}

func TestTabCyclesFocus(t *testing.T) {
	m, _ := newTestModel(t, &internal.StubCaller{})
	assert.True(t, m.config[fieldAccountSID].Focused())

	m, _ = press(t, m, tea.KeyTab)
	assert.True(t, m.config[fieldAuthToken].Focused())
	assert.False(t, m.config[fieldAccountSID].Focused())

	m, _ = press(t, m, tea.KeyShiftTab)
	m, _ = press(t, m, tea.KeyShiftTab)
	assert.True(t, m.config[fieldPhoneNumber].Focused())
}

func TestView_MasksToken(t *testing.T) {
	m, _ := newTestModel(t, &internal.StubCaller{})
	fillCredentials(&m, internal.CredentialRecord{AccountSID: "AC1", AuthToken: "supersecrettoken", PhoneNumber: "+1"})

	view := m.View()
	assert.Contains(t, view, "Twilio Configuration")
	assert.NotContains(t, view, "supersecrettoken")
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, &internal.StubCaller{})
	_, cmd := press(t, m, tea.KeyCtrlC)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
