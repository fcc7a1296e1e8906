package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Mostrar la sesión actual",
		RunE: func(cmd *cobra.Command, args []string) error {
			principal := appCtx.Store.Principal()
			if principal == nil {
				fmt.Println("Sin sesión activa.")
				return nil
			}

			fmt.Printf("%s %s <%s> (id %d)\n", principal.Nombre, principal.Apellido, principal.Email, principal.ID)
			fmt.Printf("Roles:    %s\n", strings.Join(principal.Roles, ", "))
			fmt.Printf("Permisos: %s\n", strings.Join(principal.Permisos, ", "))
			if expiry, ok := appCtx.Store.TokenExpiry(); ok {
				fmt.Printf("Token expira: %s\n", expiry.Local().Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}
