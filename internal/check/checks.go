package check

import (
	"fmt"
	"strconv"

	"github.com/retroenv/dsgocheck/internal/cheat"
)

// blockLen is the expected length of each data block in characters, every
// block encodes an unsigned 32 bit field.
const blockLen = 8

// lower 24 bits of block A, the part after the opcode byte of D-type and
// loop codes.
const afterOpcodeMask = 0x00ffffff

// parseBlock parses a data block as a base 16 integer. Checkers treat
// unparseable blocks as out of their scope, the structural pre-check owns
// those diagnostics.
func parseBlock(block string) (uint64, bool) {
	value, err := strconv.ParseUint(block, 16, 64)
	return value, err == nil
}

// alwaysPassChecker is the identity rule for opcodes that have no
// structural constraint beyond the universal pre-check.
type alwaysPassChecker struct{}

func (alwaysPassChecker) Check(cheat.Opcode, string, string) cheat.Result {
	return cheat.Passed
}

// writeChecker validates that a write's data fits the width declared by
// its opcode. The engine truncates excess bits silently, so a wider value
// is flagged as a warning instead of an error.
type writeChecker struct{}

func (writeChecker) Check(op cheat.Opcode, _, blockB string) cheat.Result {
	value, ok := parseBlock(blockB)
	if !ok {
		return cheat.Passed
	}

	var width uint64
	switch op {
	case cheat.WriteShort:
		width = 16
	case cheat.WriteByte:
		width = 8
	default: // word writes use the full block
		return cheat.Passed
	}

	if value>>width != 0 {
		return cheat.NewWarning(fmt.Sprintf(
			"Data block B exceeds the %d bit write width, excess bits are ignored.", width))
	}
	return cheat.Passed
}

// resetChecker validates the field layout of reset and condition boundary
// codes. Reset and EndCond carry no payload at all, SetOffsetPtr takes its
// pointer from block A and requires a zero block B.
type resetChecker struct{}

func (resetChecker) Check(op cheat.Opcode, blockA, blockB string) cheat.Result {
	if op != cheat.SetOffsetPtr {
		if value, ok := parseBlock(blockA); ok && len(blockA) == blockLen &&
			value&afterOpcodeMask != 0 {
			return boundaryBlockA.result()
		}
	}

	if value, ok := parseBlock(blockB); ok && value != 0 {
		return boundaryBlockB.result()
	}
	return cheat.Passed
}

// zeroAfterOpcodeChecker validates that block A carries nothing but the
// opcode byte, the encoding of these codes puts all data into block B.
type zeroAfterOpcodeChecker struct{}

func (zeroAfterOpcodeChecker) Check(_ cheat.Opcode, blockA, _ string) cheat.Result {
	value, ok := parseBlock(blockA)
	if !ok || len(blockA) != blockLen {
		return cheat.Passed
	}

	if value&afterOpcodeMask != 0 {
		return zeroAfterOpcode.result()
	}
	return cheat.Passed
}
