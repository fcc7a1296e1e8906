package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/barberiapp/admin-cli/api"
	"github.com/barberiapp/admin-cli/router"
)

func registerCmd() *cobra.Command {
	var req api.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register <email>",
		Short: "Registrar una cuenta nueva",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Email = args[0]
			if req.Nombre == "" || req.Apellido == "" {
				return fmt.Errorf("nombre y apellido son obligatorios")
			}
			if req.Password == "" {
				var err error
				req.Password, err = promptPassword("Contraseña: ")
				if err != nil {
					return err
				}
			}

			principal, err := appCtx.Store.Register(cmd.Context(), req)
			if err != nil {
				var apiErr *api.Error
				if errors.As(err, &apiErr) && apiErr.Message != "" {
					fmt.Fprintln(os.Stderr, apiErr.Message)
				} else {
					fmt.Fprintln(os.Stderr, "Error al registrar la cuenta")
				}
				return err
			}

			fmt.Printf("Cuenta creada: %s %s (%s)\n", principal.Nombre, principal.Apellido, principal.Email)
			return appCtx.Router.Navigate(cmd.Context(), router.DashboardPath)
		},
	}

	cmd.Flags().StringVar(&req.Nombre, "nombre", "", "nombre")
	cmd.Flags().StringVar(&req.Apellido, "apellido", "", "apellido")
	cmd.Flags().StringVar(&req.Telefono, "telefono", "", "teléfono")
	cmd.Flags().StringVar(&req.RUT, "rut", "", "RUT")
	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "contraseña (se pedirá si falta)")
	return cmd
}
