// Package permissions decides the visibility of UI affordances from the
// session's permission set. Views compose Allowed with their own
// conditional rendering; a denied fragment is never emitted at all.
package permissions

// Op combines multiple permission codes.
type Op string

const (
	// OpAny renders when the principal holds at least one of the codes.
	// This is the default combinator.
	OpAny Op = "OR"
	// OpAll renders only when the principal holds every code.
	OpAll Op = "AND"
)

// Checker is the session slice the evaluator reads. *session.Store and
// *session.Principal both satisfy it.
type Checker interface {
	HasPermission(code string) bool
}

// Allowed evaluates the codes against the checker. An empty code list is
// always allowed.
func Allowed(checker Checker, op Op, codes ...string) bool {
	if len(codes) == 0 {
		return true
	}

	if op == OpAll {
		for _, code := range codes {
			if !checker.HasPermission(code) {
				return false
			}
		}
		return true
	}

	for _, code := range codes {
		if checker.HasPermission(code) {
			return true
		}
	}
	return false
}

// AllowedAny is Allowed with the default combinator.
func AllowedAny(checker Checker, codes ...string) bool {
	return Allowed(checker, OpAny, codes...)
}
