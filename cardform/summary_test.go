package cardform_test

import (
	"testing"

	"github.com/jackc/cardform/cardform"
	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	state := completeState()
	state.OwnerName = "JOHN DOE"

	expected := "카드 번호는 1234 5678 9012 3456 입니다\n" +
		"만료일 12/25 입니다\n" +
		"카드 소유자 이름 JOHN DOE 입니다\n" +
		"보안코드 123 입니다\n" +
		"비밀번호 1 2 * *"

	require.Equal(t, expected, cardform.Summary(state))
}
