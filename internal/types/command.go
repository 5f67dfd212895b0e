package types

import (
	"github.com/kballard/go-shellquote"
)

// Command describes a single external tool invocation.
type Command struct {
	// Executable name or path.
	Name string `json:"name" yaml:"name"`
	// Arguments in order, not including the executable.
	Args []string `json:"args" yaml:"args"`
	// Working directory. Empty means the caller's current directory.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`
}

// Argv returns the executable followed by its arguments.
func (c Command) Argv() []string {
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, c.Name)
	return append(argv, c.Args...)
}

// String renders the command as a shell-quoted command line.
func (c Command) String() string {
	return shellquote.Join(c.Argv()...)
}

// CommandOutput holds the captured standard streams of a finished command.
type CommandOutput struct {
	Stdout []byte
	Stderr []byte
}
