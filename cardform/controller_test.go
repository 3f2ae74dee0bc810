package cardform_test

import (
	"testing"

	"github.com/jackc/cardform/cardform"
	"github.com/stretchr/testify/require"
)

type focusRecorder struct {
	focused []cardform.FieldID
}

func (r *focusRecorder) Focus(id cardform.FieldID) {
	r.focused = append(r.focused, id)
}

type alertRecorder struct {
	messages []string
}

func (r *alertRecorder) Alert(message string) {
	r.messages = append(r.messages, message)
}

// typeInto feeds value into id one character at a time the way a browser
// delivers input events.
func typeInto(c *cardform.Controller, id cardform.FieldID, value string) cardform.Change {
	var change cardform.Change
	runes := []rune(value)
	for i := range runes {
		change = c.Change(id, string(runes[:i+1]))
	}
	return change
}

func fillCompleteForm(c *cardform.Controller) {
	typeInto(c, cardform.CardNumberFirst, "1234")
	typeInto(c, cardform.CardNumberSecond, "5678")
	typeInto(c, cardform.CardNumberThird, "9012")
	typeInto(c, cardform.CardNumberFourth, "3456")
	typeInto(c, cardform.ExpirationMonth, "12")
	typeInto(c, cardform.ExpirationYear, "25")
	typeInto(c, cardform.SecurityCode, "123")
	typeInto(c, cardform.PasswordFirst, "1")
	typeInto(c, cardform.PasswordSecond, "2")
}

func TestNewControllerInitialState(t *testing.T) {
	c := cardform.NewController(nil, nil)
	require.Equal(t, cardform.State{}, c.State())
	require.False(t, c.Complete())
	require.Equal(t, cardform.CardNumberFirst, c.Focus())
}

func TestControllerChangeAdvancesFocusAtMaxLength(t *testing.T) {
	for _, id := range cardform.Fields {
		focuser := &focusRecorder{}
		c := cardform.NewController(focuser, nil)

		value := ""
		for i := 0; i < id.MaxLength()-1; i++ {
			value += "1"
		}
		if id == cardform.OwnerName {
			value = ""
			for i := 0; i < id.MaxLength()-1; i++ {
				value += "A"
			}
		}

		if value != "" {
			change := c.Change(id, value)
			require.True(t, change.Accepted)
			require.Equal(t, id, change.Focus, "field %v should keep focus below max length", id)
			require.Empty(t, focuser.focused)
		}

		last := "1"
		if id == cardform.OwnerName {
			last = "A"
		}
		change := c.Change(id, value+last)
		require.True(t, change.Accepted)

		next, ok := cardform.NextField(id)
		if ok {
			require.Equal(t, next, change.Focus)
			require.Equal(t, []cardform.FieldID{next}, focuser.focused)
		} else {
			require.Equal(t, id, change.Focus)
			require.Empty(t, focuser.focused)
		}
	}
}

func TestControllerChangeLastFieldDoesNotPanic(t *testing.T) {
	c := cardform.NewController(&focusRecorder{}, nil)
	require.NotPanics(t, func() {
		change := c.Change(cardform.PasswordSecond, "9")
		require.True(t, change.Accepted)
		require.Equal(t, cardform.PasswordSecond, change.Focus)
	})
}

func TestControllerChangeRejectsInvalidInput(t *testing.T) {
	focuser := &focusRecorder{}
	c := cardform.NewController(focuser, nil)

	typeInto(c, cardform.SecurityCode, "12")
	require.Equal(t, cardform.SecurityCode, c.Focus())

	change := c.Change(cardform.SecurityCode, "12a")
	require.False(t, change.Accepted)
	require.Equal(t, "12", change.Value)
	require.Equal(t, cardform.SecurityCode, change.Focus)
	require.Equal(t, "12", c.State().SecurityCode)
	require.Equal(t, cardform.SecurityCode, c.Focus())
	require.Empty(t, focuser.focused)

	change = c.Change(cardform.SecurityCode, "1234")
	require.False(t, change.Accepted)
	require.Equal(t, "12", c.State().SecurityCode)

	change = c.Change(cardform.SecurityCode, "1 3")
	require.False(t, change.Accepted)
	require.Equal(t, "12", c.State().SecurityCode)
	require.Empty(t, focuser.focused)
}

func TestControllerChangeRejectedInOtherFieldReportsThatField(t *testing.T) {
	focuser := &focusRecorder{}
	c := cardform.NewController(focuser, nil)

	typeInto(c, cardform.CardNumberFirst, "1234")
	require.Equal(t, cardform.CardNumberSecond, c.Focus())

	change := c.Change(cardform.ExpirationMonth, "a")
	require.False(t, change.Accepted)
	require.Equal(t, "", change.Value)
	require.Equal(t, cardform.ExpirationMonth, change.Focus)
	require.Equal(t, cardform.ExpirationMonth, c.Focus())
	require.Equal(t, []cardform.FieldID{cardform.CardNumberSecond}, focuser.focused)
}

func TestControllerChangeAllowsDeletion(t *testing.T) {
	c := cardform.NewController(nil, nil)
	typeInto(c, cardform.CardNumberFirst, "12")

	change := c.Change(cardform.CardNumberFirst, "")
	require.True(t, change.Accepted)
	require.Equal(t, "", c.State().CardNumber.First)
}

func TestControllerChangeOwnerName(t *testing.T) {
	c := cardform.NewController(nil, nil)

	change := typeInto(c, cardform.OwnerName, "john doe")
	require.True(t, change.Accepted)
	require.Equal(t, "JOHN DOE", change.Value)
	require.Equal(t, "JOHN DOE", c.State().OwnerName)

	change = c.Change(cardform.OwnerName, "john doe3")
	require.False(t, change.Accepted)
	require.Equal(t, "JOHN DOE", change.Value)
}

func TestControllerCompletionFlagTracksEveryChange(t *testing.T) {
	c := cardform.NewController(nil, nil)
	fillCompleteForm(c)
	require.True(t, c.Complete())

	change := c.Change(cardform.CardNumberThird, "901")
	require.False(t, change.Complete)
	require.False(t, c.Complete())

	change = c.Change(cardform.CardNumberThird, "9012")
	require.True(t, change.Complete)

	c.Dispatch(cardform.Action{Type: cardform.ChangeSecurityCode, Value: "12"})
	require.False(t, c.Complete())
}

func TestControllerOwnerNameDoesNotAffectCompletion(t *testing.T) {
	c := cardform.NewController(nil, nil)
	fillCompleteForm(c)
	require.True(t, c.Complete())

	typeInto(c, cardform.OwnerName, "JANE")
	require.True(t, c.Complete())

	c.Change(cardform.OwnerName, "")
	require.True(t, c.Complete())
}

func TestControllerSubmitComplete(t *testing.T) {
	alerter := &alertRecorder{}
	c := cardform.NewController(nil, alerter)
	fillCompleteForm(c)
	require.True(t, c.Complete())

	summary, err := c.Submit()
	require.NoError(t, err)
	require.Contains(t, summary, "1234 5678 9012 3456")
	require.Contains(t, summary, "12/25")
	require.Contains(t, summary, "123")
	require.Equal(t, []string{summary}, alerter.messages)
}

func TestControllerSubmitIncomplete(t *testing.T) {
	alerter := &alertRecorder{}
	c := cardform.NewController(nil, alerter)
	fillCompleteForm(c)
	c.Change(cardform.SecurityCode, "12")
	require.False(t, c.Complete())

	summary, err := c.Submit()
	require.Error(t, err)
	require.Empty(t, summary)
	requireIncomplete(t, err, cardform.SecurityCodeGroup)
	require.Equal(t, []string{"CVC/CVV를 완벽히 입력해주세요"}, alerter.messages)
}

func TestControllerSetFocus(t *testing.T) {
	c := cardform.NewController(nil, nil)
	c.SetFocus(cardform.OwnerName)
	require.Equal(t, cardform.OwnerName, c.Focus())

	c.SetFocus(cardform.FieldID(99))
	require.Equal(t, cardform.OwnerName, c.Focus())
}
