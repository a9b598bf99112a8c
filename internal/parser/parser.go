// Package parser reads raw cheat text into the cheat data model.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/dsgocheck/internal/check"
	"github.com/retroenv/dsgocheck/internal/cheat"
)

// Parse reads cheat text and returns the contained cheats. A line of the
// form [Name] starts a new cheat, every other non empty line is expected
// to be two whitespace separated data blocks. Blank lines and lines
// starting with # or // are skipped, code lines before the first
// descriptor belong to an unnamed cheat.
//
// A block of wrong length or with non hex characters is not a parse
// error as long as the opcode digit is readable, such instructions flow
// through to the validator which reports them.
func Parse(reader io.Reader) ([]*cheat.Cheat, error) {
	var cheats []*cheat.Cheat
	var current *cheat.Cheat

	scanner := bufio.NewScanner(reader)
	for fileLine := 1; scanner.Scan(); fileLine++ {
		line := strings.TrimSpace(scanner.Text())
		if skipLine(line) {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			current = &cheat.Cheat{
				Descriptor: cheat.Descriptor{Name: strings.Trim(line, "[]")},
			}
			cheats = append(cheats, current)
			continue
		}

		instr, err := parseInstruction(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", fileLine, err)
		}

		if current == nil {
			current = &cheat.Cheat{}
			cheats = append(cheats, current)
		}
		current.Instructions = append(current.Instructions, instr)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading cheat text: %w", err)
	}

	return cheats, nil
}

func skipLine(line string) bool {
	return line == "" ||
		strings.HasPrefix(line, "#") ||
		strings.HasPrefix(line, "//")
}

// parseInstruction parses one code line and binds the opcode's validation
// rule to the instruction.
func parseInstruction(line string) (cheat.Instruction, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return cheat.Instruction{}, fmt.Errorf("expected 2 data blocks, got %d", len(fields))
	}

	opcode, err := cheat.DecodeOpcode(fields[0])
	if err != nil {
		return cheat.Instruction{}, fmt.Errorf("decoding opcode: %w", err)
	}

	return cheat.Instruction{
		Opcode:  opcode,
		BlockA:  fields[0],
		BlockB:  fields[1],
		Checker: check.RuleFor(opcode),
	}, nil
}
