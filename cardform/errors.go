package cardform

// IncompleteError is returned when a required field group has not been fully
// entered. The message names the group.
type IncompleteError struct {
	Group Group
}

func (e *IncompleteError) Error() string {
	switch e.Group {
	case CardNumberGroup:
		return "카드 번호를 완벽히 입력해주세요"
	case ExpirationDateGroup:
		return "만료일을 완벽히 입력해주세요"
	case SecurityCodeGroup:
		return "CVC/CVV를 완벽히 입력해주세요"
	case PasswordGroup:
		return "비밀번호를 완벽히 입력해주세요"
	default:
		return "입력을 완료해주세요"
	}
}
