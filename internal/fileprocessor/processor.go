// Package fileprocessor handles cheat file loading and checking
package fileprocessor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/dsgocheck/internal/check"
	"github.com/retroenv/dsgocheck/internal/cheat"
	"github.com/retroenv/dsgocheck/internal/options"
	"github.com/retroenv/dsgocheck/internal/parser"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete cheat file checking workflow: load,
// parse, validate every cheat and report all diagnostics. It returns an
// error if any cheat's overall result is an error.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program) error {
	file, err := os.Open(opts.Input)
	if err != nil {
		return fmt.Errorf("opening file '%s': %w", opts.Input, err)
	}
	defer func() {
		_ = file.Close()
	}()

	cheats, err := parser.Parse(file)
	if err != nil {
		return fmt.Errorf("parsing file '%s': %w", opts.Input, err)
	}

	var failed int
	for _, c := range cheats {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !checkCheat(logger, c) {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d cheats failed the check", failed, len(cheats))
	}
	return nil
}

// checkCheat validates a single cheat and logs the overall verdict and
// every per line diagnostic. It returns false if the overall result is an
// error.
func checkCheat(logger *log.Logger, c *cheat.Cheat) bool {
	overall, details := check.Validate(c)
	name := cheatName(c)

	for _, detail := range details {
		switch detail.Result.Severity {
		case cheat.Warning:
			logger.Warn(detail.Result.Message,
				log.String("cheat", name),
				log.Int("line", detail.CheatLine))

		case cheat.Error:
			logger.Error(detail.Result.Message,
				log.String("cheat", name),
				log.Int("line", detail.CheatLine),
				log.Int("code", detail.Result.Code))
		}
	}

	switch overall.Severity {
	case cheat.Error:
		logger.Error(overall.Message, log.String("cheat", name))
		return false

	case cheat.Warning:
		logger.Warn(overall.Message, log.String("cheat", name))

	default:
		logger.Info("Cheat passed all checks",
			log.String("cheat", name),
			log.Int("instructions", len(c.Instructions)))
	}
	return true
}

func cheatName(c *cheat.Cheat) string {
	if c.Descriptor.Name == "" {
		return "(unnamed)"
	}
	return c.Descriptor.Name
}

// PrintBanner prints the application banner with version information.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("dsgocheck", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
