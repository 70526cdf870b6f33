// Package shell runs the interactive menu over a single task store.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"schedq/internal/config"
	"schedq/internal/store"
)

// Command is one shell command.
type Command struct {
	Name        string
	Description string
	Handler     func(s *Shell, args []string) bool // returns true to quit
}

// builtins collects the commands registered by this package's init funcs.
var builtins []*Command

// Register adds a command to the builtin set.
func Register(cmd *Command) {
	builtins = append(builtins, cmd)
}

// Shell is the interactive menu. It owns no tasks itself; all state lives in
// the injected store.
type Shell struct {
	Store *store.Store
	Cfg   config.Config
	Log   *log.Logger
	out   io.Writer
	in    *bufio.Scanner
	cmds  map[string]*Command
}

// New wires a shell around an explicitly constructed store.
func New(st *store.Store, cfg config.Config, logger *log.Logger, in io.Reader, out io.Writer) *Shell {
	s := &Shell{
		Store: st,
		Cfg:   cfg,
		Log:   logger,
		out:   out,
		in:    bufio.NewScanner(in),
		cmds:  make(map[string]*Command, len(builtins)),
	}
	for _, cmd := range builtins {
		s.cmds[cmd.Name] = cmd
	}
	return s
}

// Run reads commands until quit or EOF.
func (s *Shell) Run() {
	fmt.Fprintln(s.out, "--- Personal Scheduling Assistant ---")
	s.printHelp()

	for {
		fmt.Fprint(s.out, "> ")
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return
		}
		input := strings.TrimSpace(s.in.Text())
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		name := strings.ToLower(parts[0])
		cmd, ok := s.cmds[name]
		if !ok {
			fmt.Fprintf(s.out, "Unknown command: %s. Type help for available commands.\n", name)
			continue
		}
		if cmd.Handler(s, parts[1:]) {
			return
		}
	}
}

func (s *Shell) printHelp() {
	names := make([]string, 0, len(s.cmds))
	for n := range s.cmds {
		names = append(names, n)
	}
	sort.Strings(names)

	fmt.Fprintln(s.out, "Available commands:")
	for _, n := range names {
		fmt.Fprintf(s.out, "  %-10s %s\n", n, s.cmds[n].Description)
	}
}

// promptLine asks for one line of input. ok is false on EOF.
func (s *Shell) promptLine(label string) (string, bool) {
	fmt.Fprintf(s.out, "%s: ", label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// promptInt reprompts until the input parses as an integer.
func (s *Shell) promptInt(label string) (int, bool) {
	for {
		line, ok := s.promptLine(label)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(s.out, "Please enter a whole number.")
			continue
		}
		return n, true
	}
}
