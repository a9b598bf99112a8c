// Package options contains the program options.
package options

// Program options of the cheat code checker.
type Program struct {
	Input string

	Debug bool
	Quiet bool
}
