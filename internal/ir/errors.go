package ir

import "fmt"

// InvariantViolation is the panic value raised by Builder.Emit and the
// error value returned by Code.Check when a Code fails the
// well-formedness invariant (P1)/(P2)/(P6). These are always
// programming errors: they name the failing invariant and the
// instruction index and are never recovered from inside this module.
type InvariantViolation struct {
	Rule  string
	Index int
	Msg   string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("fuzzil/ir: invariant %s violated at instruction %d: %s", e.Rule, e.Index, e.Msg)
}

func violation(rule string, index int, format string, args ...interface{}) *InvariantViolation {
	return &InvariantViolation{Rule: rule, Index: index, Msg: fmt.Sprintf(format, args...)}
}
