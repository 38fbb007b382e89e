package classification

/*
RuleSet is an immutable pair of pattern lists. Exceptions are checked before
Ignores: a command matching any exception is retained even when an ignore
pattern also matches it. All patterns are compiled case-insensitively.
*/
type RuleSet struct {
	Exceptions []string
	Ignores    []string
}

// DefaultRuleSet returns the built-in cleanup policy.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		Exceptions: []string{
			// password retrieval to clipboard
			`^pass -c`,
		},
		Ignores: []string{
			// short things
			`^.{1,3}$`,
			// cd / ls with relative directories
			`^cd [^~/]`,
			`^ls [^~/]`,
			// annoying if accidentally re-executed at a later date
			`^(sudo )?reboot`,
			`^(sudo )?shutdown`,
			`^(sudo )?halt`,
			// mouse esc codes
			`^0`,
			// commands explicitly hidden by user
			`^ `,
			// sensitive looking lines
			`(api|token|key|secret|pass)`,
		},
	}
}
