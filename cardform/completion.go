package cardform

// CheckFormCompletion returns an *IncompleteError for the first required group
// that is not fully entered, checking card number, expiration date, security
// code and password in that order. The owner name is optional and never
// checked.
func CheckFormCompletion(state State) error {
	if anyBelow(state.CardNumber.Segments(), CardNumberFirst.MaxLength()) {
		return &IncompleteError{Group: CardNumberGroup}
	}

	if anyBelow(state.ExpirationDate.Segments(), ExpirationMonth.MaxLength()) {
		return &IncompleteError{Group: ExpirationDateGroup}
	}

	if IsLengthBelow(state.SecurityCode, SecurityCode.MaxLength()) {
		return &IncompleteError{Group: SecurityCodeGroup}
	}

	if anyBelow(state.Password.Segments(), PasswordFirst.MaxLength()) {
		return &IncompleteError{Group: PasswordGroup}
	}

	return nil
}

// CheckFormValidation re-checks completion immediately before submission. It
// looks only at the values, never at a previously computed completion flag.
func CheckFormValidation(state State) error {
	return CheckFormCompletion(state)
}

// IsComplete reports whether CheckFormCompletion passes.
func IsComplete(state State) bool {
	return CheckFormCompletion(state) == nil
}

func anyBelow(values []string, length int) bool {
	for _, v := range values {
		if IsLengthBelow(v, length) {
			return true
		}
	}
	return false
}
