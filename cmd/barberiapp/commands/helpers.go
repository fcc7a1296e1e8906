package commands

import (
	"fmt"
	"strconv"

	"github.com/barberiapp/admin-cli/permissions"
)

// requirePermission is the command-level equivalent of a hidden button:
// the subcommand refuses to run without the code.
func requirePermission(code string) error {
	if !permissions.AllowedAny(appCtx.Store, code) {
		return fmt.Errorf("permiso %s requerido", code)
	}
	return nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("id inválido %q", arg)
	}
	return id, nil
}

func boolWord(b bool, yes, no string) string {
	if b {
		return yes
	}
	return no
}
