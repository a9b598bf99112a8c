package check

import "github.com/retroenv/dsgocheck/internal/cheat"

// catalogEntry maps a failed check condition to an error code and a human
// readable message. The table can be swapped out for localization without
// touching the checkers that reference the entries.
type catalogEntry struct {
	code    int
	message string
}

var (
	wrongLengthA = catalogEntry{1, "Data block A has the wrong length, expected 8 characters."}
	wrongLengthB = catalogEntry{2, "Data block B has the wrong length, expected 8 characters."}
	invalidHexA  = catalogEntry{3, "Data block A is not a valid hexadecimal number."}
	invalidHexB  = catalogEntry{4, "Data block B is not a valid hexadecimal number."}

	zeroAfterOpcode = catalogEntry{5, "Data block A must be zero padded after the opcode byte."}
	boundaryBlockA  = catalogEntry{6, "Condition boundary code must not carry data after the opcode byte."}
	boundaryBlockB  = catalogEntry{7, "Data block B of a boundary code must be zero."}
)

func (e catalogEntry) result() cheat.Result {
	return cheat.NewError(e.code, e.message)
}
