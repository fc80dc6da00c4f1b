package command

import (
	"fmt"
	"sort"
	"strings"
)

// maxVerbWords is the longest verb phrase in the catalogue.
const maxVerbWords = 2

// Registry maps verb phrases to Command definitions.
type Registry struct {
	commands map[string]*Command
}

// NewRegistry creates a Registry populated with the given commands.
//
// Precondition: No two commands may share a name; every name has at most
// maxVerbWords words; every grammar placeholder is known.
// Postcondition: Returns a Registry or an error describing the first problem.
func NewRegistry(cmds []Command) (*Registry, error) {
	r := &Registry{commands: make(map[string]*Command, len(cmds))}
	for i := range cmds {
		cmd := &cmds[i]
		if _, exists := r.commands[cmd.Name]; exists {
			return nil, fmt.Errorf("duplicate command name: %q", cmd.Name)
		}
		if n := len(strings.Fields(cmd.Name)); n == 0 || n > maxVerbWords {
			return nil, fmt.Errorf("command name %q must have 1..%d words", cmd.Name, maxVerbWords)
		}
		if len(cmd.Grammars) == 0 {
			return nil, fmt.Errorf("command %q has no grammars", cmd.Name)
		}
		for _, gs := range append([][]Grammar{cmd.Grammars}, classGrammarLists(cmd)...) {
			for _, g := range gs {
				for _, e := range g {
					if e.Literal == "" {
						if _, ok := placeholderRoles[e.Placeholder]; !ok {
							return nil, fmt.Errorf("command %q uses unknown placeholder %q", cmd.Name, e.Placeholder)
						}
					}
				}
			}
		}
		r.commands[cmd.Name] = cmd
	}
	return r, nil
}

func classGrammarLists(cmd *Command) [][]Grammar {
	out := make([][]Grammar, 0, len(cmd.ClassGrammars))
	for _, gs := range cmd.ClassGrammars {
		out = append(out, gs)
	}
	return out
}

// DefaultRegistry creates a Registry with the built-in catalogue.
//
// Postcondition: Returns a Registry with all built-in commands registered.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(BuiltinCommands())
	if err != nil {
		panic(fmt.Sprintf("building default registry: %v", err))
	}
	return r
}

// Lookup returns the command with the given verb phrase, matched
// case-insensitively with whitespace collapsed.
func (r *Registry) Lookup(name string) (*Command, bool) {
	cmd, ok := r.commands[strings.ToUpper(strings.Join(strings.Fields(name), " "))]
	return cmd, ok
}

// Resolve finds the longest leading run of tokens naming a verb.
//
// Postcondition: Returns (command, remaining tokens, true) if found, or (nil, nil, false).
func (r *Registry) Resolve(tokens []Token) (*Command, []Token, bool) {
	for n := min(maxVerbWords, len(tokens)); n > 0; n-- {
		words := make([]string, n)
		for i := range words {
			words[i] = strings.ToUpper(tokens[i].Folded)
		}
		if cmd, ok := r.commands[strings.Join(words, " ")]; ok {
			return cmd, tokens[n:], true
		}
	}
	return nil, nil, false
}

// Commands returns all registered commands sorted by name.
func (r *Registry) Commands() []*Command {
	out := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		out = append(out, cmd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Allowed returns the sorted names of commands legal in the given phase.
func (r *Registry) Allowed(ingame bool) []string {
	var out []string
	for _, cmd := range r.Commands() {
		if (ingame && cmd.Modes.Ingame) || (!ingame && cmd.Modes.Pregame) {
			out = append(out, cmd.Name)
		}
	}
	return out
}
