package cardform

import "strings"

// passwordMask stands in for the PIN digits that are not collected.
const passwordMask = "* *"

// Summary formats the entered values for display after a successful submit.
func Summary(state State) string {
	lines := []string{
		"카드 번호는 " + strings.Join(state.CardNumber.Segments(), " ") + " 입니다",
		"만료일 " + strings.Join(state.ExpirationDate.Segments(), "/") + " 입니다",
		"카드 소유자 이름 " + state.OwnerName + " 입니다",
		"보안코드 " + state.SecurityCode + " 입니다",
		"비밀번호 " + strings.Join(state.Password.Segments(), " ") + " " + passwordMask,
	}
	return strings.Join(lines, "\n")
}
