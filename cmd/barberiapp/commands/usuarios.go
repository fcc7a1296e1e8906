package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barberiapp/admin-cli/api"
	"github.com/barberiapp/admin-cli/permissions"
)

func usuariosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "usuarios",
		Short: "Gestión de usuarios",
	}

	var page, size int
	list := &cobra.Command{
		Use:   "list",
		Short: "Listar usuarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.show(cmd.Context(), "/usuarios", func(ctx context.Context) error {
				result, err := appCtx.Client.Usuarios().List(ctx, page, size)
				if err != nil {
					return err
				}
				for _, u := range result.Content {
					state := "activo"
					if !u.Activo {
						state = "inactivo"
					}
					if u.CuentaBloqueada {
						state += ", bloqueado"
					}
					fmt.Printf("%6d  %-30s  %-25s  %s\n", u.ID, u.NombreCompleto, u.Email, state)
				}
				fmt.Printf("página %d de %d (%d usuarios)\n", result.Number+1, result.TotalPages, result.TotalElements)
				return nil
			})
		},
	}
	list.Flags().IntVar(&page, "page", 0, "página")
	list.Flags().IntVar(&size, "size", 10, "tamaño de página")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Ver un usuario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return appCtx.show(cmd.Context(), "/usuarios", func(ctx context.Context) error {
				u, err := appCtx.Client.Usuarios().Get(ctx, id)
				if err != nil {
					return err
				}
				fmt.Printf("%s %s <%s>\n", u.Nombre, u.Apellido, u.Email)
				for _, r := range u.Roles {
					fmt.Printf("  rol: %s (%s)\n", r.Nombre, r.Codigo)
				}
				if u.PorcentajeComision != 0 {
					fmt.Printf("  comisión: %.1f%%\n", u.PorcentajeComision)
				}
				return nil
			})
		},
	}

	activate := &cobra.Command{
		Use:   "activar <id>",
		Short: "Activar o desactivar una cuenta",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePermission(permissions.UsuarioEditar); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			activo, _ := cmd.Flags().GetBool("activo")
			return appCtx.show(cmd.Context(), "/usuarios", func(ctx context.Context) error {
				u, err := appCtx.Client.Usuarios().SetActive(ctx, id, activo)
				if err != nil {
					return err
				}
				fmt.Printf("Usuario %d activo=%t\n", u.ID, u.Activo)
				return nil
			})
		},
	}
	activate.Flags().Bool("activo", true, "estado deseado")

	block := &cobra.Command{
		Use:   "bloquear <id>",
		Short: "Bloquear una cuenta",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePermission(permissions.UsuarioEditar); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return appCtx.show(cmd.Context(), "/usuarios", func(ctx context.Context) error {
				return appCtx.Client.Usuarios().Block(ctx, id)
			})
		},
	}

	unblock := &cobra.Command{
		Use:   "desbloquear <id>",
		Short: "Desbloquear una cuenta",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePermission(permissions.UsuarioEditar); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return appCtx.show(cmd.Context(), "/usuarios", func(ctx context.Context) error {
				return appCtx.Client.Usuarios().Unblock(ctx, id)
			})
		},
	}

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Eliminar un usuario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePermission(permissions.UsuarioEliminar); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return appCtx.show(cmd.Context(), "/usuarios", func(ctx context.Context) error {
				return appCtx.Client.Usuarios().Delete(ctx, id)
			})
		},
	}

	var createReq api.UsuarioRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Crear un usuario",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePermission(permissions.UsuarioCrear); err != nil {
				return err
			}
			if createReq.Password == "" {
				var err error
				createReq.Password, err = promptPassword("Contraseña inicial: ")
				if err != nil {
					return err
				}
			}
			return appCtx.show(cmd.Context(), "/usuarios", func(ctx context.Context) error {
				u, err := appCtx.Client.Usuarios().Create(ctx, createReq)
				if err != nil {
					return err
				}
				fmt.Printf("Usuario %d (%s) creado.\n", u.ID, u.Email)
				return nil
			})
		},
	}
	create.Flags().StringVar(&createReq.Email, "email", "", "email")
	create.Flags().StringVar(&createReq.Nombre, "nombre", "", "nombre")
	create.Flags().StringVar(&createReq.Apellido, "apellido", "", "apellido")
	create.Flags().StringVar(&createReq.Telefono, "telefono", "", "teléfono")
	create.Flags().StringVar(&createReq.RUT, "rut", "", "RUT")
	create.Flags().Int64SliceVar(&createReq.RolesIDs, "roles", nil, "ids de roles")
	create.Flags().StringVarP(&createReq.Password, "password", "p", "", "contraseña (se pedirá si falta)")
	create.MarkFlagRequired("email")
	create.MarkFlagRequired("nombre")
	create.MarkFlagRequired("apellido")

	var perfilReq api.PerfilRequest
	perfil := &cobra.Command{
		Use:   "perfil",
		Short: "Actualizar el perfil propio",
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.show(cmd.Context(), "/usuarios", func(ctx context.Context) error {
				u, err := appCtx.Client.Usuarios().UpdateProfile(ctx, perfilReq)
				if err != nil {
					return err
				}
				fmt.Printf("Perfil de %s actualizado.\n", u.Email)
				return nil
			})
		},
	}
	perfil.Flags().StringVar(&perfilReq.Telefono, "telefono", "", "teléfono")
	perfil.Flags().StringVar(&perfilReq.Direccion, "direccion", "", "dirección")
	perfil.Flags().StringVar(&perfilReq.Nacionalidad, "nacionalidad", "", "nacionalidad")
	perfil.Flags().StringVar(&perfilReq.FotoPerfil, "foto", "", "URL de la foto de perfil")

	stats := &cobra.Command{
		Use:   "stats <id>",
		Short: "Estadísticas de ventas del usuario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return appCtx.show(cmd.Context(), "/usuarios", func(ctx context.Context) error {
				s, err := appCtx.Client.Usuarios().Stats(ctx, id)
				if err != nil {
					return err
				}
				fmt.Printf("Ventas: %d, ganancia total: %.2f, promedio mensual: %.2f\n",
					s.TotalVentas, s.TotalGanancia, s.GananciaPromedioMensual)
				for _, f := range s.ServiciosFavoritos {
					fmt.Printf("  %s: %d ventas\n", f.ServicioNombre, f.CantidadVentas)
				}
				return nil
			})
		},
	}

	cmd.AddCommand(list, get, create, perfil, activate, block, unblock, rm, stats)
	return cmd
}
