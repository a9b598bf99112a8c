package check

import (
	"testing"

	"github.com/retroenv/dsgocheck/internal/cheat"
	"github.com/retroenv/retrogolib/assert"
)

func newTestCheat(instructions ...cheat.Instruction) *cheat.Cheat {
	return &cheat.Cheat{
		Descriptor:   cheat.Descriptor{Name: "Test Cheat"},
		Instructions: instructions,
	}
}

func newInstruction(op cheat.Opcode, blockA, blockB string) cheat.Instruction {
	return cheat.Instruction{
		Opcode:  op,
		BlockA:  blockA,
		BlockB:  blockB,
		Checker: RuleFor(op),
	}
}

func TestValidateEmptyCheat(t *testing.T) {
	overall, details := Validate(newTestCheat())

	assert.Equal(t, cheat.Passed, overall)
	assert.Equal(t, 0, len(details))
}

func TestValidatePass(t *testing.T) {
	overall, details := Validate(newTestCheat(
		newInstruction(cheat.WriteWord, "0AF2CD18", "CFF2AD4C"),
	))

	assert.Equal(t, cheat.Passed, overall)
	assert.Equal(t, 1, len(details))
	assert.Equal(t, cheat.Passed, details[0].Result)
	assert.Equal(t, 0, details[0].CheatLine)
}

func TestValidateMalformedBlocks(t *testing.T) {
	overall, details := Validate(newTestCheat(
		newInstruction(cheat.WriteWord, "0GZA7F9C", "A4B8LF7J8L82JK"),
	))

	assert.Equal(t, cheat.Error, overall.Severity)

	codes := map[int]bool{}
	for _, detail := range details {
		if detail.Result.Severity == cheat.Error {
			codes[detail.Result.Code] = true
		}
	}
	assert.True(t, codes[wrongLengthB.code], "wrong length B error expected")
	assert.True(t, codes[invalidHexA.code], "invalid hex A error expected")
	assert.True(t, codes[invalidHexB.code], "invalid hex B error expected")
	assert.False(t, codes[wrongLengthA.code], "block A has the correct length")
}

// A single malformed instruction can produce up to four pre-check errors,
// all checks run unconditionally.
func TestValidateAllPreChecksFire(t *testing.T) {
	_, details := Validate(newTestCheat(
		newInstruction(cheat.WriteWord, "XY", "Z"),
	))

	var errs int
	for _, detail := range details {
		if detail.Result.Severity == cheat.Error {
			errs++
		}
	}
	assert.Equal(t, 4, errs)
}

func TestValidateLineNumbering(t *testing.T) {
	overall, details := Validate(newTestCheat(
		newInstruction(cheat.WriteWord, "0AF2CD18", "CFF2AD4C"),
		newInstruction(cheat.WriteWord, "0AF2CD18", "CFF2ADXX"),
	))

	assert.Equal(t, cheat.Error, overall.Severity)

	for _, detail := range details {
		if detail.Result.Severity != cheat.Error {
			continue
		}
		assert.Equal(t, 1, detail.CheatLine, "errors must be attached to the second instruction")
	}
}

func TestValidateWarningReduction(t *testing.T) {
	// a short write carrying 32 bit data is flagged but benign
	overall, details := Validate(newTestCheat(
		newInstruction(cheat.WriteShort, "123D6B28", "0001AD4C"),
	))

	assert.Equal(t, cheat.Warning, overall.Severity)
	assert.Equal(t, "Instruction compiled with warnings.", overall.Message)
	assert.Equal(t, 1, len(details))
	assert.Equal(t, cheat.Warning, details[0].Result.Severity)
}

func TestValidateErrorWinsOverWarning(t *testing.T) {
	overall, _ := Validate(newTestCheat(
		newInstruction(cheat.WriteShort, "123D6B28", "0001AD4C"),
		newInstruction(cheat.Reset, "D2000000", "00000001"),
	))

	assert.Equal(t, cheat.Error, overall.Severity)
	assert.Equal(t, 0, overall.Code)
	assert.Equal(t, "Instruction compiled with errors.", overall.Message)
}

func TestValidateUnboundInstruction(t *testing.T) {
	overall, details := Validate(newTestCheat(cheat.Instruction{
		Opcode: cheat.EndRepeat,
		BlockA: "D1000020",
		BlockB: "00000000",
	}))

	assert.Equal(t, cheat.Error, overall.Severity)
	assert.Equal(t, 1, len(details))
	assert.Equal(t, zeroAfterOpcode.code, details[0].Result.Code)
}

func TestValidateDetailOrder(t *testing.T) {
	// pre-check results come first, the opcode rule's result last
	_, details := Validate(newTestCheat(
		newInstruction(cheat.EndRepeat, "D100002Z", "00000000"),
	))

	assert.Equal(t, 2, len(details))
	assert.Equal(t, invalidHexA.code, details[0].Result.Code)
	assert.Equal(t, cheat.Passed, details[1].Result)
}
