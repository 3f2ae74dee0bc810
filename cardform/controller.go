// Package cardform implements the card entry form: per-cell input validation,
// the state reducer, completion checks, and the focus-advance policy.
//
// A Controller owns one form. It is not safe for concurrent use; callers that
// receive events from several goroutines must serialize them.
package cardform

import "strings"

// Focuser moves input focus to a cell.
type Focuser interface {
	Focus(id FieldID)
}

// Alerter shows a blocking message to the user.
type Alerter interface {
	Alert(message string)
}

type nopFocuser struct{}

func (nopFocuser) Focus(FieldID) {}

type nopAlerter struct{}

func (nopAlerter) Alert(string) {}

// Change is the outcome of a single keystroke.
type Change struct {
	// Accepted is false when the typed value was rejected and state was left
	// unchanged.
	Accepted bool
	// Value is the value stored for the cell after the change.
	Value string
	// Focus is the cell holding focus after the change.
	Focus FieldID
	// Complete is the form completion flag after the change.
	Complete bool
}

// Controller owns the form state for one page. It is not safe for concurrent
// use.
type Controller struct {
	state    State
	complete bool
	focus    FieldID
	focuser  Focuser
	alerter  Alerter
}

// NewController returns a controller for an empty form with focus on the first
// cell. A nil focuser or alerter discards those side effects.
func NewController(focuser Focuser, alerter Alerter) *Controller {
	if focuser == nil {
		focuser = nopFocuser{}
	}
	if alerter == nil {
		alerter = nopAlerter{}
	}
	return &Controller{focus: Fields[0], focuser: focuser, alerter: alerter}
}

// State returns a copy of the current form state.
func (c *Controller) State() State {
	return c.state
}

// Complete returns the completion flag. It always reflects the current state.
func (c *Controller) Complete() bool {
	return c.complete
}

// Focus returns the cell that currently holds focus.
func (c *Controller) Focus() FieldID {
	return c.focus
}

// SetFocus records that the user moved focus to id without typing.
func (c *Controller) SetFocus(id FieldID) {
	if id.valid() {
		c.focus = id
	}
}

// Dispatch merges action into the state and recomputes the completion flag.
func (c *Controller) Dispatch(action Action) {
	c.state = Reduce(c.state, action)
	c.complete = IsComplete(c.state)
}

// Accepts reports whether value may be stored in the cell id.
func Accepts(id FieldID, value string) bool {
	if !id.valid() {
		return false
	}
	if id.Group() == OwnerNameGroup {
		return IsNameInRange(value, id.MaxLength())
	}
	return IsNumberInRange(value, id.MaxLength())
}

// Change handles the user typing value into the cell id. Typing puts focus on
// id. A rejected value leaves state untouched and focus on id. An accepted
// value that fills the cell moves focus to the next cell, if there is one.
func (c *Controller) Change(id FieldID, value string) Change {
	c.SetFocus(id)

	if !Accepts(id, value) {
		return Change{Value: c.state.Value(id), Focus: c.focus, Complete: c.complete}
	}

	if id.Group() == OwnerNameGroup {
		value = strings.ToUpper(value)
	}

	c.Dispatch(ActionFor(id, value))

	if !IsLengthBelow(value, id.MaxLength()) {
		if next, ok := NextField(id); ok {
			c.focus = next
			c.focuser.Focus(next)
		}
	}

	return Change{Accepted: true, Value: c.state.Value(id), Focus: c.focus, Complete: c.complete}
}

// Submit validates the form again and alerts either the summary or the reason
// the form is incomplete. The returned error is an *IncompleteError.
func (c *Controller) Submit() (string, error) {
	if err := CheckFormValidation(c.state); err != nil {
		c.alerter.Alert(err.Error())
		return "", err
	}

	summary := Summary(c.state)
	c.alerter.Alert(summary)
	return summary, nil
}
