package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allViews = []ActiveView{ViewHome, ViewContact, ViewProject}
var allActions = []Action{ActionOpenContact, ActionOpenProject, ActionClose}

func TestNewViewController_StartsAtHome(t *testing.T) {
	assert.Equal(t, ViewHome, NewViewController().Active())
}

func TestTransition_Table(t *testing.T) {
	tests := []struct {
		from   ActiveView
		action Action
		want   ActiveView
	}{
		{ViewHome, ActionOpenContact, ViewContact},
		{ViewHome, ActionOpenProject, ViewProject},
		{ViewHome, ActionClose, ViewHome},
		{ViewContact, ActionClose, ViewHome},
		{ViewContact, ActionOpenContact, ViewContact},
		{ViewContact, ActionOpenProject, ViewContact},
		{ViewProject, ActionClose, ViewHome},
		{ViewProject, ActionOpenProject, ViewProject},
		{ViewProject, ActionOpenContact, ViewProject},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+"/"+tt.action.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Transition(tt.from, tt.action))
		})
	}
}

func TestTransition_NoDirectOverlaySwitch(t *testing.T) {
	for _, a := range allActions {
		assert.NotEqual(t, ViewProject, Transition(ViewContact, a), "contact -%s-> project", a)
		assert.NotEqual(t, ViewContact, Transition(ViewProject, a), "project -%s-> contact", a)
	}
}

func TestViewController_Dispatch(t *testing.T) {
	c := NewViewController()

	assert.Equal(t, ViewContact, c.Dispatch(ActionOpenContact))
	assert.Equal(t, ViewContact, c.Dispatch(ActionOpenContact), "re-opening is a no-op")
	assert.Equal(t, ViewHome, c.Dispatch(ActionClose))
	assert.Equal(t, ViewProject, c.Dispatch(ActionOpenProject))
	assert.Equal(t, ViewHome, c.Dispatch(ActionClose))
	assert.Equal(t, ViewHome, c.Active())
}

func TestParseActiveView_RoundTrip(t *testing.T) {
	for _, v := range allViews {
		got, err := ParseActiveView(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	_, err := ParseActiveView("settings")
	assert.ErrorIs(t, err, ErrUnknownView)
}

func TestParseAction_RoundTrip(t *testing.T) {
	for _, a := range allActions {
		got, err := ParseAction(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	_, err := ParseAction("")
	assert.ErrorIs(t, err, ErrUnknownAction)
}
