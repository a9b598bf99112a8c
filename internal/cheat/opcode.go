package cheat

import (
	"fmt"
	"strings"
)

// Opcode represents the instruction kind of one cheat code line. It selects
// both the semantics of the line and the validation rule bound to it.
type Opcode int

// Opcodes of the Action Replay DS cheat code encoding.
const (
	WriteWord Opcode = iota
	WriteShort
	WriteByte
	GtWord
	LtWord
	EqWord
	NeWord
	GtShort
	LtShort
	EqShort
	NeShort
	SetOffsetPtr
	Repeat
	EndCond
	EndRepeat
	Reset
	SetOffsetImmediate
	AddToDxData
	SetDxData
	CopyDxWord
	CopyDxShort
	CopyDxByte
	LoadDxWord
	LoadDxShort
	LoadDxByte
	AddOffset
	BtnCode
	PatchCode
	MemoryCopy
)

var opcodeNames = map[Opcode]string{
	WriteWord:          "WriteWord",
	WriteShort:         "WriteShort",
	WriteByte:          "WriteByte",
	GtWord:             "GtWord",
	LtWord:             "LtWord",
	EqWord:             "EqWord",
	NeWord:             "NeWord",
	GtShort:            "GtShort",
	LtShort:            "LtShort",
	EqShort:            "EqShort",
	NeShort:            "NeShort",
	SetOffsetPtr:       "SetOffsetPtr",
	Repeat:             "Repeat",
	EndCond:            "EndCond",
	EndRepeat:          "EndRepeat",
	Reset:              "Reset",
	SetOffsetImmediate: "SetOffsetImmediate",
	AddToDxData:        "AddToDxData",
	SetDxData:          "SetDxData",
	CopyDxWord:         "CopyDxWord",
	CopyDxShort:        "CopyDxShort",
	CopyDxByte:         "CopyDxByte",
	LoadDxWord:         "LoadDxWord",
	LoadDxShort:        "LoadDxShort",
	LoadDxByte:         "LoadDxByte",
	AddOffset:          "AddOffset",
	BtnCode:            "BtnCode",
	PatchCode:          "PatchCode",
	MemoryCopy:         "MemoryCopy",
}

// String returns the opcode name for logging and error messages.
func (o Opcode) String() string {
	name, ok := opcodeNames[o]
	if !ok {
		return fmt.Sprintf("Opcode(%d)", int(o))
	}
	return name
}

// DecodeOpcode decodes the opcode from the leading hex digits of data
// block A. The first digit selects the code type, D-type codes are
// selected by the second digit.
func DecodeOpcode(blockA string) (Opcode, error) {
	if blockA == "" {
		return 0, fmt.Errorf("empty data block")
	}

	blockA = strings.ToUpper(blockA)
	switch blockA[0] {
	case '0':
		return WriteWord, nil
	case '1':
		return WriteShort, nil
	case '2':
		return WriteByte, nil
	case '3':
		return GtWord, nil
	case '4':
		return LtWord, nil
	case '5':
		return EqWord, nil
	case '6':
		return NeWord, nil
	case '7':
		return GtShort, nil
	case '8':
		return LtShort, nil
	case '9':
		return EqShort, nil
	case 'A':
		return NeShort, nil
	case 'B':
		return SetOffsetPtr, nil
	case 'C':
		return Repeat, nil
	case 'D':
		return decodeDTypeOpcode(blockA)
	case 'E':
		return PatchCode, nil
	case 'F':
		return MemoryCopy, nil
	}
	return 0, fmt.Errorf("unsupported code type '%c'", blockA[0])
}

func decodeDTypeOpcode(blockA string) (Opcode, error) {
	if len(blockA) < 2 {
		return 0, fmt.Errorf("incomplete D-type code '%s'", blockA)
	}

	switch blockA[1] {
	case '0':
		return EndCond, nil
	case '1':
		return EndRepeat, nil
	case '2':
		return Reset, nil
	case '3':
		return SetOffsetImmediate, nil
	case '4':
		return AddToDxData, nil
	case '5':
		return SetDxData, nil
	case '6':
		return CopyDxWord, nil
	case '7':
		return CopyDxShort, nil
	case '8':
		return CopyDxByte, nil
	case '9':
		return LoadDxWord, nil
	case 'A':
		return LoadDxShort, nil
	case 'B':
		return LoadDxByte, nil
	case 'C':
		return AddOffset, nil
	case 'D':
		return BtnCode, nil
	}
	return 0, fmt.Errorf("unsupported D-type code '%s'", blockA[:2])
}
