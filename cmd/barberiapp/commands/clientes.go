package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barberiapp/admin-cli/api"
	"github.com/barberiapp/admin-cli/permissions"
)

func clientesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clientes",
		Short: "Gestión de clientes",
	}

	var page, size int
	list := &cobra.Command{
		Use:   "list",
		Short: "Listar clientes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.show(cmd.Context(), "/clientes", func(ctx context.Context) error {
				result, err := appCtx.Client.Clientes().List(ctx, page, size)
				if err != nil {
					return err
				}
				for _, c := range result.Content {
					fmt.Printf("%6d  %-30s  %-15s  %s\n", c.ID, c.NombreCompleto, c.Telefono, c.Email)
				}
				fmt.Printf("página %d de %d (%d clientes)\n", result.Number+1, result.TotalPages, result.TotalElements)
				return nil
			})
		},
	}
	list.Flags().IntVar(&page, "page", 0, "página")
	list.Flags().IntVar(&size, "size", 10, "tamaño de página")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Ver un cliente",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return appCtx.show(cmd.Context(), "/clientes", func(ctx context.Context) error {
				c, err := appCtx.Client.Clientes().Get(ctx, id)
				if err != nil {
					return err
				}
				fmt.Printf("%s\nRUT: %s\nTel: %s\nEmail: %s\n", c.NombreCompleto, c.RUT, c.Telefono, c.Email)
				if c.Observaciones != "" {
					fmt.Println(c.Observaciones)
				}
				return nil
			})
		},
	}

	var createReq api.ClienteRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Crear un cliente",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePermission(permissions.ClienteCrear); err != nil {
				return err
			}
			return appCtx.show(cmd.Context(), "/clientes", func(ctx context.Context) error {
				c, err := appCtx.Client.Clientes().Create(ctx, createReq)
				if err != nil {
					return err
				}
				fmt.Printf("Cliente %d creado.\n", c.ID)
				return nil
			})
		},
	}
	create.Flags().StringVar(&createReq.NombreCompleto, "nombre", "", "nombre completo")
	create.Flags().StringVar(&createReq.RUT, "rut", "", "RUT")
	create.Flags().StringVar(&createReq.Email, "email", "", "email")
	create.Flags().StringVar(&createReq.Telefono, "telefono", "", "teléfono")
	create.Flags().StringVar(&createReq.Direccion, "direccion", "", "dirección")
	create.Flags().StringVar(&createReq.Observaciones, "observaciones", "", "observaciones")
	create.MarkFlagRequired("nombre")

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Eliminar un cliente",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePermission(permissions.ClienteEliminar); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return appCtx.show(cmd.Context(), "/clientes", func(ctx context.Context) error {
				return appCtx.Client.Clientes().Delete(ctx, id)
			})
		},
	}

	cmd.AddCommand(list, get, create, rm)
	return cmd
}
