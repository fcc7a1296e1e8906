package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barberiapp/admin-cli/api"
	"github.com/barberiapp/admin-cli/permissions"
)

func metodosPagoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metodos-pago",
		Short: "Gestión de métodos de pago",
	}

	var soloActivos bool
	list := &cobra.Command{
		Use:   "list",
		Short: "Listar métodos de pago",
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.show(cmd.Context(), "/metodos-pago", func(ctx context.Context) error {
				var metodos []api.MetodoPago
				if soloActivos {
					ms, err := appCtx.Client.MetodosPago().ListActive(ctx)
					if err != nil {
						return err
					}
					metodos = ms
				} else {
					result, err := appCtx.Client.MetodosPago().List(ctx, 0, 100)
					if err != nil {
						return err
					}
					metodos = result.Content
				}
				for _, m := range metodos {
					fmt.Printf("%6d  %-15s  %-25s  %-12s  %s\n",
						m.ID, m.Codigo, m.Nombre, m.TipoMetodo, boolWord(m.Activo, "activo", "inactivo"))
				}
				return nil
			})
		},
	}
	list.Flags().BoolVar(&soloActivos, "activos", false, "sólo métodos activos")

	var createReq api.MetodoPagoRequest
	var tipoMetodo string
	create := &cobra.Command{
		Use:   "create",
		Short: "Crear un método de pago",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePermission(permissions.ConfigEditar); err != nil {
				return err
			}
			createReq.TipoMetodo = api.TipoMetodoPago(tipoMetodo)
			return appCtx.show(cmd.Context(), "/metodos-pago", func(ctx context.Context) error {
				m, err := appCtx.Client.MetodosPago().Create(ctx, createReq)
				if err != nil {
					return err
				}
				fmt.Printf("Método de pago %d (%s) creado.\n", m.ID, m.Codigo)
				return nil
			})
		},
	}
	create.Flags().StringVar(&createReq.Nombre, "nombre", "", "nombre")
	create.Flags().StringVar(&createReq.Codigo, "codigo", "", "código")
	create.Flags().StringVar(&createReq.Descripcion, "descripcion", "", "descripción")
	create.Flags().StringVar(&tipoMetodo, "tipo", "", "tipo de método (EFECTIVO, TARJETA, TRANSFERENCIA...)")
	create.MarkFlagRequired("nombre")
	create.MarkFlagRequired("codigo")
	create.MarkFlagRequired("tipo")

	activate := &cobra.Command{
		Use:   "activar <id>",
		Short: "Activar o desactivar un método de pago",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePermission(permissions.ConfigEditar); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			activo, _ := cmd.Flags().GetBool("activo")
			return appCtx.show(cmd.Context(), "/metodos-pago", func(ctx context.Context) error {
				m, err := appCtx.Client.MetodosPago().SetActive(ctx, id, activo)
				if err != nil {
					return err
				}
				fmt.Printf("Método %s %s.\n", m.Codigo, boolWord(m.Activo, "activado", "desactivado"))
				return nil
			})
		},
	}
	activate.Flags().Bool("activo", true, "estado deseado")

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Eliminar un método de pago",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePermission(permissions.ConfigEditar); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return appCtx.show(cmd.Context(), "/metodos-pago", func(ctx context.Context) error {
				return appCtx.Client.MetodosPago().Delete(ctx, id)
			})
		},
	}

	cmd.AddCommand(list, create, activate, rm)
	return cmd
}
