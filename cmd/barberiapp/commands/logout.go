package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cerrar sesión",
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx.Store.Logout()
			fmt.Println("Sesión cerrada.")
			return nil
		},
	}
}
