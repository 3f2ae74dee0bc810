package cardform

// ActionType names a state update.
type ActionType string

const (
	ChangeCardNumber     ActionType = "CHANGE_CARD_NUMBER"
	ChangeExpirationDate ActionType = "CHANGE_EXPIRATION_DATE"
	ChangeOwnerName      ActionType = "CHANGE_OWNER_NAME"
	ChangeSecurityCode   ActionType = "CHANGE_SECURITY_CODE"
	ChangePassword       ActionType = "CHANGE_PASSWORD"
)

// Action is a single update. Key selects the segment for compound groups and
// is ignored otherwise.
type Action struct {
	Type  ActionType
	Key   string
	Value string
}

var groupActions = map[Group]ActionType{
	CardNumberGroup:     ChangeCardNumber,
	ExpirationDateGroup: ChangeExpirationDate,
	OwnerNameGroup:      ChangeOwnerName,
	SecurityCodeGroup:   ChangeSecurityCode,
	PasswordGroup:       ChangePassword,
}

// ActionFor returns the action that stores value in the cell id.
func ActionFor(id FieldID, value string) Action {
	return Action{Type: groupActions[id.Group()], Key: id.Key(), Value: value}
}

// Reduce returns the state that results from applying action to state. Actions
// with an unknown type or key leave the state unchanged. Reduce does not
// validate values.
func Reduce(state State, action Action) State {
	switch action.Type {
	case ChangeCardNumber:
		switch action.Key {
		case KeyFirst:
			state.CardNumber.First = action.Value
		case KeySecond:
			state.CardNumber.Second = action.Value
		case KeyThird:
			state.CardNumber.Third = action.Value
		case KeyFourth:
			state.CardNumber.Fourth = action.Value
		}
	case ChangeExpirationDate:
		switch action.Key {
		case KeyMonth:
			state.ExpirationDate.Month = action.Value
		case KeyYear:
			state.ExpirationDate.Year = action.Value
		}
	case ChangeOwnerName:
		state.OwnerName = action.Value
	case ChangeSecurityCode:
		state.SecurityCode = action.Value
	case ChangePassword:
		switch action.Key {
		case KeyFirst:
			state.Password.First = action.Value
		case KeySecond:
			state.Password.Second = action.Value
		}
	}

	return state
}
