package main

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownView   = errors.New("unknown view")
	ErrUnknownAction = errors.New("unknown action")
)

// ActiveView selects which top-level presentation is visible.
type ActiveView int

const (
	ViewHome ActiveView = iota
	ViewContact
	ViewProject
)

func (v ActiveView) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewContact:
		return "contact"
	case ViewProject:
		return "project"
	default:
		return "unknown"
	}
}

// ParseActiveView accepts the lowercase names produced by String.
func ParseActiveView(s string) (ActiveView, error) {
	switch s {
	case "home":
		return ViewHome, nil
	case "contact":
		return ViewContact, nil
	case "project":
		return ViewProject, nil
	}
	return ViewHome, fmt.Errorf("%w: %q", ErrUnknownView, s)
}

// Action is a user activation that requests a view transition.
type Action int

const (
	ActionOpenContact Action = iota
	ActionOpenProject
	ActionClose
)

func (a Action) String() string {
	switch a {
	case ActionOpenContact:
		return "contact"
	case ActionOpenProject:
		return "project"
	case ActionClose:
		return "close"
	default:
		return "unknown"
	}
}

func ParseAction(s string) (Action, error) {
	switch s {
	case "contact":
		return ActionOpenContact, nil
	case "project":
		return ActionOpenProject, nil
	case "close":
		return ActionClose, nil
	}
	return ActionClose, fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// Overlays only open from home and only close back to it, so at most one
// overlay is ever visible.
var transitions = map[ActiveView]map[Action]ActiveView{
	ViewHome: {
		ActionOpenContact: ViewContact,
		ActionOpenProject: ViewProject,
	},
	ViewContact: {
		ActionClose: ViewHome,
	},
	ViewProject: {
		ActionClose: ViewHome,
	},
}

// Transition returns the view reached by applying a to from.
// Pairs missing from the table leave the view unchanged.
func Transition(from ActiveView, a Action) ActiveView {
	if to, ok := transitions[from][a]; ok {
		return to
	}
	return from
}

// ViewController owns the active view for one session (a browser page load or
// a terminal program).
type ViewController struct {
	active ActiveView
}

func NewViewController() *ViewController {
	return &ViewController{active: ViewHome}
}

func (c *ViewController) Active() ActiveView {
	return c.active
}

// Dispatch applies a and returns the resulting view.
func (c *ViewController) Dispatch(a Action) ActiveView {
	c.active = Transition(c.active, a)
	return c.active
}
