package validate

import "strings"

// Violations is an ordered list of human-readable constraint failures, one
// message per failed rule, in the order the rules were checked. It marshals
// directly as the API failure envelope and satisfies error so services can
// hand it across layer boundaries without losing the individual messages.
type Violations struct {
	Messages []string `json:"errors"`
}

func (v *Violations) Error() string {
	return strings.Join(v.Messages, "; ")
}

// Validator accumulates violations across independent checks. Every check
// runs regardless of earlier failures, so a candidate with several bad
// fields reports all of them at once. A Validator is for a single candidate;
// build a fresh one per attempt so messages are never carried over.
type Validator struct {
	messages []string
}

func New() *Validator { return &Validator{} }

// Check records a violation for field when ok is false. Messages take the
// form "<field> <reason>".
func (v *Validator) Check(ok bool, field, reason string) {
	if !ok {
		v.messages = append(v.messages, field+" "+reason)
	}
}

// Valid reports whether no check has failed so far.
func (v *Validator) Valid() bool { return len(v.messages) == 0 }

// Violations returns the accumulated messages, or nil when everything
// passed. The caller owns the returned value; the Validator keeps no
// reference to it.
func (v *Validator) Violations() *Violations {
	if v.Valid() {
		return nil
	}
	out := make([]string, len(v.messages))
	copy(out, v.messages)
	return &Violations{Messages: out}
}

// Permitted reports whether value is a member of the allowed set.
func Permitted[T comparable](value T, allowed ...T) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
