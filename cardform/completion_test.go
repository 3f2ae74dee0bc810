package cardform_test

import (
	"errors"
	"testing"

	"github.com/jackc/cardform/cardform"
	"github.com/stretchr/testify/require"
)

func completeState() cardform.State {
	return cardform.State{
		CardNumber:     cardform.CardNumber{First: "1234", Second: "5678", Third: "9012", Fourth: "3456"},
		ExpirationDate: cardform.ExpirationDate{Month: "12", Year: "25"},
		SecurityCode:   "123",
		Password:       cardform.Password{First: "1", Second: "2"},
	}
}

func requireIncomplete(t *testing.T, err error, group cardform.Group) {
	t.Helper()

	var incomplete *cardform.IncompleteError
	require.True(t, errors.As(err, &incomplete), "expected *IncompleteError, got %v", err)
	require.Equal(t, group, incomplete.Group)
}

func TestCheckFormCompletionComplete(t *testing.T) {
	require.NoError(t, cardform.CheckFormCompletion(completeState()))
	require.True(t, cardform.IsComplete(completeState()))
}

func TestCheckFormCompletionIgnoresOwnerName(t *testing.T) {
	state := completeState()
	state.OwnerName = ""
	require.NoError(t, cardform.CheckFormCompletion(state))

	state.OwnerName = "JOHN DOE"
	require.NoError(t, cardform.CheckFormCompletion(state))
}

func TestCheckFormCompletionEachSegmentShort(t *testing.T) {
	for _, id := range cardform.Fields {
		if id == cardform.OwnerName {
			continue
		}

		state := completeState()
		full := state.Value(id)
		state = cardform.Reduce(state, cardform.ActionFor(id, full[:len(full)-1]))

		err := cardform.CheckFormCompletion(state)
		requireIncomplete(t, err, id.Group())
	}
}

func TestCheckFormCompletionPriorityOrder(t *testing.T) {
	err := cardform.CheckFormCompletion(cardform.State{})
	requireIncomplete(t, err, cardform.CardNumberGroup)
	require.Equal(t, "카드 번호를 완벽히 입력해주세요", err.Error())

	state := completeState()
	state.ExpirationDate.Year = "2"
	state.Password.First = ""
	err = cardform.CheckFormCompletion(state)
	requireIncomplete(t, err, cardform.ExpirationDateGroup)
	require.Equal(t, "만료일을 완벽히 입력해주세요", err.Error())

	state = completeState()
	state.SecurityCode = ""
	state.Password.Second = ""
	err = cardform.CheckFormCompletion(state)
	requireIncomplete(t, err, cardform.SecurityCodeGroup)

	state = completeState()
	state.Password.Second = ""
	err = cardform.CheckFormCompletion(state)
	requireIncomplete(t, err, cardform.PasswordGroup)
	require.Equal(t, "비밀번호를 완벽히 입력해주세요", err.Error())
}

func TestCheckFormCompletionSecurityCodeOneDigitShort(t *testing.T) {
	state := completeState()
	state.SecurityCode = "12"

	err := cardform.CheckFormCompletion(state)
	requireIncomplete(t, err, cardform.SecurityCodeGroup)
	require.Contains(t, err.Error(), "CVC/CVV")
	require.False(t, cardform.IsComplete(state))
}

func TestCheckFormValidation(t *testing.T) {
	require.NoError(t, cardform.CheckFormValidation(completeState()))

	state := completeState()
	state.CardNumber.Fourth = "345"
	requireIncomplete(t, cardform.CheckFormValidation(state), cardform.CardNumberGroup)
}
