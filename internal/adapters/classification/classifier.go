/*
Package classification decides which history commands survive cleanup.

The rule tables are plain data (RuleSet) handed to NewClassifier, so tests
can inject alternate policies; nothing here is package-global.
*/
package classification

import (
	"fmt"
	"regexp"

	"github.com/shellkit/histclean/internal/core/ports"
)

// Classifier applies an ignore/exception policy to normalized command
// strings. It implements the ports.RecordClassifier interface.
type Classifier struct {
	exceptions []*regexp.Regexp
	ignores    []*regexp.Regexp
}

// NewClassifier compiles the rule set once. A pattern that fails to compile
// is a fatal configuration error: the caller must not run the pipeline
// without a working classifier.
func NewClassifier(rules RuleSet) (ports.RecordClassifier, error) {
	exceptions, err := compileAll(rules.Exceptions)
	if err != nil {
		return nil, fmt.Errorf("compiling exception rules: %w", err)
	}
	ignores, err := compileAll(rules.Ignores)
	if err != nil {
		return nil, fmt.Errorf("compiling ignore rules: %w", err)
	}
	return &Classifier{exceptions: exceptions, ignores: ignores}, nil
}

// Retain reports whether command is kept. Exceptions win over ignores, and a
// command matching neither set is kept by default.
func (c *Classifier) Retain(command string) bool {
	if matchesAny(c.exceptions, command) {
		return true
	}
	return !matchesAny(c.ignores, command)
}

func compileAll(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

func matchesAny(set []*regexp.Regexp, s string) bool {
	for _, re := range set {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
