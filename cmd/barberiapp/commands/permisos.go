package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barberiapp/admin-cli/api"
	"github.com/barberiapp/admin-cli/permissions"
)

func permisosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "permisos",
		Short: "Gestión del catálogo de permisos",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Listar todos los permisos",
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.show(cmd.Context(), "/permisos", func(ctx context.Context) error {
				todos, err := appCtx.Client.Permisos().ListAll(ctx)
				if err != nil {
					return err
				}
				for _, p := range todos {
					fmt.Printf("%6d  %-28s  %s\n", p.ID, p.Codigo, p.Nombre)
				}
				return nil
			})
		},
	}

	var createReq api.PermisoRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Crear un permiso",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePermission(permissions.PermisoCrear); err != nil {
				return err
			}
			return appCtx.show(cmd.Context(), "/permisos", func(ctx context.Context) error {
				p, err := appCtx.Client.Permisos().Create(ctx, createReq)
				if err != nil {
					return err
				}
				fmt.Printf("Permiso %d (%s) creado.\n", p.ID, p.Codigo)
				return nil
			})
		},
	}
	create.Flags().StringVar(&createReq.Codigo, "codigo", "", "código del permiso")
	create.Flags().StringVar(&createReq.Nombre, "nombre", "", "nombre")
	create.Flags().StringVar(&createReq.Descripcion, "descripcion", "", "descripción")
	create.Flags().StringVar(&createReq.Tipo, "tipo", "", "tipo de permiso")
	create.MarkFlagRequired("codigo")
	create.MarkFlagRequired("nombre")

	var updateReq api.PermisoRequest
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Actualizar un permiso",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePermission(permissions.PermisoEditar); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return appCtx.show(cmd.Context(), "/permisos", func(ctx context.Context) error {
				_, err := appCtx.Client.Permisos().Update(ctx, id, updateReq)
				return err
			})
		},
	}
	update.Flags().StringVar(&updateReq.Codigo, "codigo", "", "código del permiso")
	update.Flags().StringVar(&updateReq.Nombre, "nombre", "", "nombre")
	update.Flags().StringVar(&updateReq.Descripcion, "descripcion", "", "descripción")
	update.Flags().StringVar(&updateReq.Tipo, "tipo", "", "tipo de permiso")

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Eliminar un permiso",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePermission(permissions.PermisoEditar); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return appCtx.show(cmd.Context(), "/permisos", func(ctx context.Context) error {
				return appCtx.Client.Permisos().Delete(ctx, id)
			})
		},
	}

	cmd.AddCommand(list, create, update, rm)
	return cmd
}
