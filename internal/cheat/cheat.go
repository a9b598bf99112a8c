// Package cheat contains the data model for Action Replay DS cheat codes.
package cheat

// Severity classifies a check outcome. Error > Warning > Pass when
// reducing many outcomes to a single verdict.
type Severity int

// Severities of a check outcome.
const (
	Pass Severity = iota
	Warning
	Error
)

// String returns the severity name for logging.
func (s Severity) String() string {
	switch s {
	case Pass:
		return "pass"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return "unknown"
}

// Result is the outcome of a single check. The zero value is a pass.
// Code is only set for errors and identifies the failed condition in the
// error catalog.
type Result struct {
	Severity Severity
	Code     int
	Message  string
}

// Passed is the pass outcome.
var Passed = Result{}

// NewWarning returns a warning outcome with the given message.
func NewWarning(message string) Result {
	return Result{Severity: Warning, Message: message}
}

// NewError returns an error outcome with the given catalog code and message.
func NewError(code int, message string) Result {
	return Result{Severity: Error, Code: code, Message: message}
}

// DetailedResult pairs a check outcome with the zero-based line of the
// cheat's instruction sequence that produced it.
type DetailedResult struct {
	Result    Result
	CheatLine int
}

// Checker validates one structural invariant family of an instruction's
// encoding. Implementations are pure and return a single Result; a rule
// can not report two simultaneous problems on one line, widening the
// return to a slice is a possible future change.
type Checker interface {
	Check(op Opcode, blockA, blockB string) Result
}

// Instruction is one cheat code line: an opcode, the two 8 character
// hexadecimal data blocks and the validation rule bound at construction
// time. Malformed blocks are allowed, the validator reports them.
type Instruction struct {
	Opcode  Opcode
	BlockA  string
	BlockB  string
	Checker Checker
}

// Descriptor describes a cheat.
type Descriptor struct {
	Name string
}

// Cheat is a descriptor plus an ordered sequence of instructions. The
// position in the sequence is the line number reported in diagnostics.
type Cheat struct {
	Descriptor   Descriptor
	Instructions []Instruction
}
