package check

import (
	"fmt"

	"github.com/retroenv/dsgocheck/internal/cheat"
)

// RuleFor returns the validation rule bound to an opcode. The mapping is
// total over the closed opcode set and groups opcodes by their shared
// encoding shape. There is no default rule: an opcode added to the model
// without a decision here panics instead of being silently mis-handled.
func RuleFor(op cheat.Opcode) cheat.Checker {
	switch op {
	case cheat.WriteWord, cheat.WriteShort, cheat.WriteByte:
		return writeChecker{}

	case cheat.Reset, cheat.EndCond, cheat.SetOffsetPtr:
		return resetChecker{}

	case cheat.Repeat, cheat.EndRepeat, cheat.SetOffsetImmediate,
		cheat.AddToDxData, cheat.SetDxData,
		cheat.CopyDxWord, cheat.CopyDxShort, cheat.CopyDxByte,
		cheat.LoadDxWord, cheat.LoadDxShort, cheat.LoadDxByte,
		cheat.AddOffset, cheat.BtnCode:
		return zeroAfterOpcodeChecker{}

	case cheat.EqWord, cheat.LtWord, cheat.GtWord, cheat.NeWord,
		cheat.EqShort, cheat.LtShort, cheat.GtShort, cheat.NeShort,
		cheat.PatchCode, cheat.MemoryCopy:
		return alwaysPassChecker{}
	}

	panic(fmt.Sprintf("no rule bound to opcode %s", op))
}
