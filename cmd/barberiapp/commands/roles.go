package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barberiapp/admin-cli/api"
	"github.com/barberiapp/admin-cli/permissions"
)

func rolesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roles",
		Short: "Gestión de roles",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Listar todos los roles",
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.show(cmd.Context(), "/roles", func(ctx context.Context) error {
				roles, err := appCtx.Client.Roles().ListAll(ctx)
				if err != nil {
					return err
				}
				for _, r := range roles {
					fmt.Printf("%6d  %-20s  %-20s  %d permisos\n", r.ID, r.Codigo, r.Nombre, len(r.Permisos))
				}
				return nil
			})
		},
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Ver un rol y sus permisos",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return appCtx.show(cmd.Context(), "/roles", func(ctx context.Context) error {
				r, err := appCtx.Client.Roles().Get(ctx, id)
				if err != nil {
					return err
				}
				fmt.Printf("%s (%s)\n%s\n", r.Nombre, r.Codigo, r.Descripcion)
				for _, p := range r.Permisos {
					fmt.Printf("  %s\n", p.Codigo)
				}
				return nil
			})
		},
	}

	var createReq api.RolRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Crear un rol",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePermission(permissions.RolCrear); err != nil {
				return err
			}
			return appCtx.show(cmd.Context(), "/roles", func(ctx context.Context) error {
				r, err := appCtx.Client.Roles().Create(ctx, createReq)
				if err != nil {
					return err
				}
				fmt.Printf("Rol %d creado.\n", r.ID)
				return nil
			})
		},
	}
	create.Flags().StringVar(&createReq.Nombre, "nombre", "", "nombre del rol")
	create.Flags().StringVar(&createReq.Codigo, "codigo", "", "código del rol")
	create.Flags().StringVar(&createReq.Descripcion, "descripcion", "", "descripción")
	create.Flags().Int64SliceVar(&createReq.PermisosIDs, "permisos", nil, "ids de permisos iniciales")
	create.MarkFlagRequired("nombre")
	create.MarkFlagRequired("codigo")

	clone := &cobra.Command{
		Use:   "clonar <id> <nuevo-nombre>",
		Short: "Clonar un rol con otro nombre",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePermission(permissions.RolCrear); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return appCtx.show(cmd.Context(), "/roles", func(ctx context.Context) error {
				r, err := appCtx.Client.Roles().Clone(ctx, id, args[1])
				if err != nil {
					return err
				}
				fmt.Printf("Rol %d clonado como %q.\n", r.ID, r.Nombre)
				return nil
			})
		},
	}

	grant := &cobra.Command{
		Use:   "grant <rol-id> <permiso-id>",
		Short: "Asignar un permiso a un rol",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePermission(permissions.RolEditar); err != nil {
				return err
			}
			rolID, err := parseID(args[0])
			if err != nil {
				return err
			}
			permisoID, err := parseID(args[1])
			if err != nil {
				return err
			}
			return appCtx.show(cmd.Context(), "/roles", func(ctx context.Context) error {
				_, err := appCtx.Client.Roles().AddPermiso(ctx, rolID, permisoID)
				return err
			})
		},
	}

	revoke := &cobra.Command{
		Use:   "revoke <rol-id> <permiso-id>",
		Short: "Quitar un permiso de un rol",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePermission(permissions.RolEditar); err != nil {
				return err
			}
			rolID, err := parseID(args[0])
			if err != nil {
				return err
			}
			permisoID, err := parseID(args[1])
			if err != nil {
				return err
			}
			return appCtx.show(cmd.Context(), "/roles", func(ctx context.Context) error {
				return appCtx.Client.Roles().RemovePermiso(ctx, rolID, permisoID)
			})
		},
	}

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Eliminar un rol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePermission(permissions.RolEliminar); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return appCtx.show(cmd.Context(), "/roles", func(ctx context.Context) error {
				return appCtx.Client.Roles().Delete(ctx, id)
			})
		},
	}

	cmd.AddCommand(list, get, create, clone, grant, revoke, rm)
	return cmd
}
