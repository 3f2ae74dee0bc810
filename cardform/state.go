package cardform

// CardNumber holds the four 4-digit blocks of a card number.
type CardNumber struct {
	First  string
	Second string
	Third  string
	Fourth string
}

// Segments returns the blocks in display order.
func (c CardNumber) Segments() []string {
	return []string{c.First, c.Second, c.Third, c.Fourth}
}

// ExpirationDate holds the two-digit month and year.
type ExpirationDate struct {
	Month string
	Year  string
}

func (d ExpirationDate) Segments() []string {
	return []string{d.Month, d.Year}
}

// Password holds the first two digits of the card PIN. The remaining digits
// are never collected.
type Password struct {
	First  string
	Second string
}

func (p Password) Segments() []string {
	return []string{p.First, p.Second}
}

// State is a snapshot of every field in the form.
type State struct {
	CardNumber     CardNumber
	ExpirationDate ExpirationDate
	OwnerName      string
	SecurityCode   string
	Password       Password
}

// Value returns the stored value of a single cell.
func (s State) Value(id FieldID) string {
	switch id {
	case CardNumberFirst:
		return s.CardNumber.First
	case CardNumberSecond:
		return s.CardNumber.Second
	case CardNumberThird:
		return s.CardNumber.Third
	case CardNumberFourth:
		return s.CardNumber.Fourth
	case ExpirationMonth:
		return s.ExpirationDate.Month
	case ExpirationYear:
		return s.ExpirationDate.Year
	case OwnerName:
		return s.OwnerName
	case SecurityCode:
		return s.SecurityCode
	case PasswordFirst:
		return s.Password.First
	case PasswordSecond:
		return s.Password.Second
	default:
		return ""
	}
}
