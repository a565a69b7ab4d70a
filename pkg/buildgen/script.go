package buildgen

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"mvdan.cc/sh/v3/pattern"
	"mvdan.cc/sh/v3/syntax"
)

// DefaultScriptPath is where the compile script is written, relative to the build directory
const DefaultScriptPath = "objects/.compile.sh"

// Script is a generated compile script
type Script struct {
	Commands []Command
}

// Issue describes a script line that the shell would not run as a single command
type Issue struct {
	Line    int
	Command string
	Reason  string
}

func (i Issue) String() string {
	return fmt.Sprintf("line %d: %s: %s", i.Line, i.Reason, i.Command)
}

// Assemble builds the compile script for the given sources and libraries.
// Every source gets a progress echo followed by a compiler call; a single linker call comes last.
func Assemble(sources []string, libs LibrarySet, opts ScriptOptions) *Script {
	opts = opts.withDefaults()
	script := &Script{
		Commands: make([]Command, 0, len(sources)*2+2),
	}

	for _, file := range sources {
		script.Commands = append(script.Commands,
			Command{RawWord("echo"), RawWord("Compiling " + filepath.Base(file) + "...")},
			CompileCommand(file, opts),
		)
	}

	script.Commands = append(script.Commands,
		Command{RawWord("echo"), RawWord("Linking...")},
		LinkCommand(libs, opts),
	)

	return script
}

// CompileCommand returns the compiler invocation for a single source file
func CompileCommand(file string, opts ScriptOptions) Command {
	opts = opts.withDefaults()
	cmd := Command{RawWord(opts.Compiler)}
	if opts.Verbose {
		cmd = append(cmd, RawWord("-v"))
	}

	return append(cmd, RawWord("--config"), RawWord(opts.ConfigFile), PathWord(file))
}

// LinkCommand returns the linker invocation. The *.ll glob and the product variable are left for the shell.
func LinkCommand(libs LibrarySet, opts ScriptOptions) Command {
	opts = opts.withDefaults()
	return Command{
		RawWord(opts.Linker),
		RawWord("*.ll"),
		PathListWord(libs.Paths...),
		RawWord("-o"),
		RawWord(opts.Product),
	}
}

// Bytes renders the script. Each command is terminated by a line break.
func (s *Script) Bytes() []byte {
	buffer := bytes.Buffer{}
	for _, cmd := range s.Commands {
		buffer.WriteString(cmd.String())
		buffer.WriteByte('\n')
	}

	return buffer.Bytes()
}

func (s *Script) String() string {
	return string(s.Bytes())
}

// Check parses every rendered command and reports those which the shell would not execute as a single
// simple command with the intended arguments. This happens when a path contains shell syntax that
// isn't covered by EscapePath: control operators, substitutions, variables or glob characters.
func (s *Script) Check(ctx context.Context) []Issue {
	issues := []Issue{}
	parser := syntax.NewParser()

	for idx, cmd := range s.Commands {
		line := cmd.String()
		reason := checkCommand(parser, line, cmd, idx+1)
		if reason == "" {
			continue
		}

		issue := Issue{Line: idx + 1, Command: line, Reason: reason}
		log(ctx).Warn().
			Int("line", issue.Line).
			Msgf("generated command may not run as intended: %s", issue)
		issues = append(issues, issue)
	}

	return issues
}

func checkCommand(parser *syntax.Parser, line string, cmd Command, lineNo int) string {
	file, err := parser.Parse(strings.NewReader(line), fmt.Sprintf("line %d", lineNo))
	if err != nil {
		return fmt.Sprintf("does not parse: %v", err)
	}

	if len(file.Stmts) != 1 {
		return fmt.Sprintf("expands to %d statements", len(file.Stmts))
	}

	stmt := file.Stmts[0]
	if stmt.Background || stmt.Negated || stmt.Coprocess || len(stmt.Redirs) > 0 {
		return "contains control operators or redirections"
	}

	call, ok := stmt.Cmd.(*syntax.CallExpr)
	if !ok {
		return "is not a simple command"
	}

	if len(call.Assigns) > 0 {
		return "starts with a variable assignment"
	}

	for _, word := range call.Args {
		for _, part := range word.Parts {
			if _, ok := part.(*syntax.CmdSubst); ok {
				return "contains a command substitution"
			}
		}
	}

	expectedArgs := cmd.fieldCount()
	if len(call.Args) != expectedArgs {
		return fmt.Sprintf("has %d arguments instead of %d", len(call.Args), expectedArgs)
	}

	// the *.ll glob and $PRODUCT_NAME are intended, paths have to stay literal
	paths := cmd.pathFields()
	for idx, word := range call.Args {
		if !paths[idx] {
			continue
		}

		for _, part := range word.Parts {
			switch part := part.(type) {
			case *syntax.ParamExp:
				return "expands a variable in a path"
			case *syntax.Lit:
				if pattern.HasMeta(part.Value, 0) {
					return "contains a glob pattern in a path"
				}
			default:
				return "contains quoting or expansions in a path"
			}
		}
	}

	return ""
}
