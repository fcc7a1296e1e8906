package permissions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/barberiapp/admin-cli/permissions"
	"github.com/barberiapp/admin-cli/session"
)

func principalWith(codes ...string) *session.Principal {
	return &session.Principal{ID: 1, Email: "ana@barberia.cl", Permisos: codes}
}

func TestAllowed(t *testing.T) {
	tests := []struct {
		name    string
		checker permissions.Checker
		op      permissions.Op
		codes   []string
		want    bool
	}{
		{"empty list renders", principalWith(), permissions.OpAny, nil, true},
		{"any with one of two held", principalWith("B"), permissions.OpAny, []string{"A", "B"}, true},
		{"any with none held", principalWith("C"), permissions.OpAny, []string{"A", "B"}, false},
		{"all with one missing", principalWith("B"), permissions.OpAll, []string{"A", "B"}, false},
		{"all with every code held", principalWith("A", "B"), permissions.OpAll, []string{"A", "B"}, true},
		{"admin passes all combinator", &session.Principal{ID: 1, Email: "x@y.cl", Roles: []string{session.RoleAdmin}}, permissions.OpAll, []string{"A", "B", "C"}, true},
		{"empty list with all combinator", principalWith(), permissions.OpAll, nil, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, permissions.Allowed(tc.checker, tc.op, tc.codes...))
		})
	}
}

func TestAllowedAnyIsTheDefaultCombinator(t *testing.T) {
	checker := principalWith("B")
	require.True(t, permissions.AllowedAny(checker, "A", "B"))
	require.False(t, permissions.AllowedAny(checker, "A"))
}
