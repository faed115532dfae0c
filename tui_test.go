package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// press delivers a key and feeds the resulting command's message back in.
func press(t *testing.T, m *termModel, k string) tea.Cmd {
	t.Helper()
	_, cmd := m.Update(keyMsg(k))
	if cmd == nil {
		return nil
	}
	if msg, ok := cmd().(transitionMsg); ok {
		m.Update(msg)
	}
	return cmd
}

func TestTermModel_StartsAtHome(t *testing.T) {
	m := newTermModel()

	assert.Equal(t, ViewHome, m.ctrl.Active())
	out := m.View()
	assert.Contains(t, out, "Welcome to my Site")
	assert.NotContains(t, out, "Get in Touch")
	assert.NotContains(t, out, "About the Project")
}

func TestTermModel_ContactThenClose(t *testing.T) {
	m := newTermModel()

	press(t, m, "c")
	require.Equal(t, ViewContact, m.ctrl.Active())
	out := m.View()
	assert.Contains(t, out, "09816223351")
	assert.Contains(t, out, "dsabanal@gmail.com")
	assert.NotContains(t, out, "Welcome to my Site")

	press(t, m, "esc")
	assert.Equal(t, ViewHome, m.ctrl.Active())
	assert.Contains(t, m.View(), "Welcome to my Site")
}

func TestTermModel_ProjectThenClose(t *testing.T) {
	m := newTermModel()

	press(t, m, "p")
	require.Equal(t, ViewProject, m.ctrl.Active())
	out := m.View()
	assert.Contains(t, out, "KwarTrack")

	last := -1
	for _, shot := range KwarTrack.Screenshots {
		idx := strings.Index(out, shot.URL())
		assert.Equal(t, 1, strings.Count(out, shot.URL()), "%s listed once", shot.Name)
		assert.Greater(t, idx, last)
		last = idx
	}

	press(t, m, "x")
	assert.Equal(t, ViewHome, m.ctrl.Active())
}

func TestTermModel_OverlayKeysDoNotSwitchOverlay(t *testing.T) {
	m := newTermModel()

	press(t, m, "c")
	cmd := press(t, m, "p")
	assert.Nil(t, cmd, "project key is unbound in the contact overlay")
	assert.Equal(t, ViewContact, m.ctrl.Active())
}

func TestTermModel_Quit(t *testing.T) {
	m := newTermModel()

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTermModel_WindowSize(t *testing.T) {
	m := newTermModel()

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	press(t, m, "c")
	lines := strings.Split(m.View(), "\n")
	assert.GreaterOrEqual(t, len(lines), 38, "overlay is placed in the full window")
}

func TestTermButton_PressInvokesOnce(t *testing.T) {
	for _, v := range []ButtonVariant{VariantPrimary, VariantSecondary, VariantGhost} {
		t.Run(string(v), func(t *testing.T) {
			calls := 0
			b := termButton{Label: "Go", Variant: v, OnPress: func() tea.Msg {
				calls++
				return nil
			}}
			b.Press()
			assert.Equal(t, 1, calls)
			assert.Contains(t, b.View(), "Go")
		})
	}
}

func TestTermButton_NilHandlerIsInert(t *testing.T) {
	b := termButton{Label: "Idle"}

	assert.NotPanics(t, func() { assert.Nil(t, b.Press()) })
	assert.Contains(t, b.View(), "Idle")
}
