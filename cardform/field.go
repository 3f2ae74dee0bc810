package cardform

import "fmt"

// Group is a compound field made of one or more input cells.
type Group int

const (
	CardNumberGroup Group = iota
	ExpirationDateGroup
	OwnerNameGroup
	SecurityCodeGroup
	PasswordGroup
)

var groupNames = [...]string{"cardNumber", "expirationDate", "ownerName", "securityCode", "password"}

func (g Group) String() string {
	if g < 0 || int(g) >= len(groupNames) {
		return fmt.Sprintf("Group(%d)", int(g))
	}
	return groupNames[g]
}

// Segment keys used by compound groups.
const (
	KeyFirst  = "first"
	KeySecond = "second"
	KeyThird  = "third"
	KeyFourth = "fourth"
	KeyMonth  = "month"
	KeyYear   = "year"
)

// OwnerNameMaxLength is the longest owner name accepted.
const OwnerNameMaxLength = 30

// FieldID identifies a single input cell. Its integer value is the cell's
// position in the focus order.
type FieldID int

const (
	CardNumberFirst FieldID = iota
	CardNumberSecond
	CardNumberThird
	CardNumberFourth
	ExpirationMonth
	ExpirationYear
	OwnerName
	SecurityCode
	PasswordFirst
	PasswordSecond
)

type fieldDef struct {
	name      string
	group     Group
	key       string
	maxLength int
}

var fieldDefs = [...]fieldDef{
	CardNumberFirst:  {"card-number-first", CardNumberGroup, KeyFirst, 4},
	CardNumberSecond: {"card-number-second", CardNumberGroup, KeySecond, 4},
	CardNumberThird:  {"card-number-third", CardNumberGroup, KeyThird, 4},
	CardNumberFourth: {"card-number-fourth", CardNumberGroup, KeyFourth, 4},
	ExpirationMonth:  {"expiration-month", ExpirationDateGroup, KeyMonth, 2},
	ExpirationYear:   {"expiration-year", ExpirationDateGroup, KeyYear, 2},
	OwnerName:        {"owner-name", OwnerNameGroup, "", OwnerNameMaxLength},
	SecurityCode:     {"security-code", SecurityCodeGroup, "", 3},
	PasswordFirst:    {"password-first", PasswordGroup, KeyFirst, 1},
	PasswordSecond:   {"password-second", PasswordGroup, KeySecond, 1},
}

// groupOffsets holds the FieldID of the first cell of each group.
var groupOffsets = [...]FieldID{0, 4, 6, 7, 8}

// Fields lists every cell in focus order.
var Fields = []FieldID{
	CardNumberFirst, CardNumberSecond, CardNumberThird, CardNumberFourth,
	ExpirationMonth, ExpirationYear,
	OwnerName,
	SecurityCode,
	PasswordFirst, PasswordSecond,
}

func (id FieldID) valid() bool {
	return id >= 0 && int(id) < len(fieldDefs)
}

// String returns the cell name used in element IDs and URLs.
func (id FieldID) String() string {
	if !id.valid() {
		return fmt.Sprintf("FieldID(%d)", int(id))
	}
	return fieldDefs[id].name
}

// Group returns the group the cell belongs to.
func (id FieldID) Group() Group {
	return fieldDefs[id].group
}

// Key returns the segment key within the cell's group. Single-cell groups have
// an empty key.
func (id FieldID) Key() string {
	return fieldDefs[id].key
}

// MaxLength returns the number of characters that completes the cell.
func (id FieldID) MaxLength() int {
	return fieldDefs[id].maxLength
}

// ParseFieldID returns the FieldID named by name.
func ParseFieldID(name string) (FieldID, error) {
	for i, def := range fieldDefs {
		if def.name == name {
			return FieldID(i), nil
		}
	}
	return 0, fmt.Errorf("unknown field %q", name)
}

// GroupFields returns the cells of g in focus order.
func GroupFields(g Group) []FieldID {
	start := groupOffsets[g]
	end := FieldID(len(fieldDefs))
	if int(g)+1 < len(groupOffsets) {
		end = groupOffsets[g+1]
	}

	fields := make([]FieldID, 0, end-start)
	for id := start; id < end; id++ {
		fields = append(fields, id)
	}
	return fields
}

// NextField returns the cell that follows id in focus order. ok is false when
// id is the last cell.
func NextField(id FieldID) (next FieldID, ok bool) {
	if !id.valid() || int(id)+1 >= len(fieldDefs) {
		return id, false
	}
	return id + 1, true
}
