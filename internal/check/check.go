// Package check validates cheat instructions against the structural rules
// of their opcode's encoding.
package check

import (
	"github.com/retroenv/dsgocheck/internal/cheat"
)

// Fixed top level messages, the per line details carry the specific
// diagnosis.
const (
	errorSummary   = "Instruction compiled with errors."
	warningSummary = "Instruction compiled with warnings."
)

// preCheck runs the opcode independent structural checks of an
// instruction. All four checks run unconditionally, a single malformed
// instruction can produce up to four errors.
func preCheck(instr cheat.Instruction) []cheat.Result {
	var results []cheat.Result

	if len(instr.BlockA) != blockLen {
		results = append(results, wrongLengthA.result())
	}
	if len(instr.BlockB) != blockLen {
		results = append(results, wrongLengthB.result())
	}
	if _, ok := parseBlock(instr.BlockA); !ok {
		results = append(results, invalidHexA.result())
	}
	if _, ok := parseBlock(instr.BlockB); !ok {
		results = append(results, invalidHexB.result())
	}

	return results
}

// Validate checks every instruction of a cheat and returns the overall
// verdict plus all per line diagnostics in instruction order. It never
// fails: every anomaly becomes an entry in the details, an empty
// instruction sequence validates as pass.
func Validate(c *cheat.Cheat) (cheat.Result, []cheat.DetailedResult) {
	var details []cheat.DetailedResult

	for line, instr := range c.Instructions {
		results := preCheck(instr)

		rule := instr.Checker
		if rule == nil { // instructions constructed without binding
			rule = RuleFor(instr.Opcode)
		}
		results = append(results, rule.Check(instr.Opcode, instr.BlockA, instr.BlockB))

		for _, result := range results {
			details = append(details, cheat.DetailedResult{
				Result:    result,
				CheatLine: line,
			})
		}
	}

	return reduce(details), details
}

// reduce computes the overall result by worst case reduction over all
// details: Error > Warning > Pass.
func reduce(details []cheat.DetailedResult) cheat.Result {
	overall := cheat.Passed
	for _, detail := range details {
		switch detail.Result.Severity {
		case cheat.Error:
			return cheat.NewError(0, errorSummary)
		case cheat.Warning:
			overall = cheat.NewWarning(warningSummary)
		}
	}
	return overall
}
