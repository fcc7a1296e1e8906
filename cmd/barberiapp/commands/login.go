package commands

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/barberiapp/admin-cli/api"
	"github.com/barberiapp/admin-cli/router"
)

func loginCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Iniciar sesión",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email := args[0]
			if password == "" {
				var err error
				password, err = promptPassword("Contraseña: ")
				if err != nil {
					return err
				}
			}

			principal, err := appCtx.Store.Login(cmd.Context(), api.LoginRequest{
				Email:    email,
				Password: password,
			})
			if err != nil {
				var apiErr *api.Error
				if errors.As(err, &apiErr) && apiErr.Message != "" {
					fmt.Fprintln(os.Stderr, apiErr.Message)
				} else {
					fmt.Fprintln(os.Stderr, "Error al iniciar sesión")
				}
				return err
			}

			fmt.Printf("Bienvenido, %s %s (%s)\n", principal.Nombre, principal.Apellido, principal.Email)
			fmt.Printf("Roles: %v, permisos: %d\n", principal.Roles, len(principal.Permisos))

			target := router.ReturnURL(appCtx.Router.CurrentPath())
			return appCtx.Router.Navigate(cmd.Context(), target)
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "contraseña (se pedirá si falta)")
	return cmd
}

func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
