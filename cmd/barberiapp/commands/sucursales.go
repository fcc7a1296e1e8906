package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barberiapp/admin-cli/api"
	"github.com/barberiapp/admin-cli/internal/utils"
	"github.com/barberiapp/admin-cli/permissions"
)

func sucursalesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sucursales",
		Short: "Gestión de sucursales",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Listar todas las sucursales",
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.show(cmd.Context(), "/sucursales", func(ctx context.Context) error {
				todas, err := appCtx.Client.Sucursales().ListAll(ctx)
				if err != nil {
					return err
				}
				for _, s := range todas {
					admin := "sin administrador"
					if s.Administrador != nil {
						admin = s.Administrador.Nombre + " " + s.Administrador.Apellido
					}
					fmt.Printf("%6d  %-25s  %-35s  %s\n", s.ID, s.Nombre, s.Direccion, admin)
				}
				return nil
			})
		},
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Ver una sucursal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return appCtx.show(cmd.Context(), "/sucursales", func(ctx context.Context) error {
				s, err := appCtx.Client.Sucursales().Get(ctx, id)
				if err != nil {
					return err
				}
				fmt.Printf("%s\n%s\n", s.Nombre, s.Direccion)
				if s.HorarioApertura != "" {
					fmt.Printf("Horario: %s a %s (%s)\n", s.HorarioApertura, s.HorarioCierre, s.DiasAtencion)
				}
				fmt.Printf("Comisión por defecto: %.1f%%\n", s.ComisionDefecto)
				return nil
			})
		},
	}

	var createReq api.SucursalRequest
	var adminID int64
	var comision float64
	create := &cobra.Command{
		Use:   "create",
		Short: "Crear una sucursal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePermission(permissions.SucursalCrear); err != nil {
				return err
			}
			if cmd.Flags().Changed("admin") {
				createReq.AdministradorID = utils.Ptr(adminID)
			}
			if cmd.Flags().Changed("comision") {
				createReq.ComisionDefecto = utils.Ptr(comision)
			}
			return appCtx.show(cmd.Context(), "/sucursales", func(ctx context.Context) error {
				s, err := appCtx.Client.Sucursales().Create(ctx, createReq)
				if err != nil {
					return err
				}
				fmt.Printf("Sucursal %d creada.\n", s.ID)
				return nil
			})
		},
	}
	create.Flags().StringVar(&createReq.Nombre, "nombre", "", "nombre")
	create.Flags().StringVar(&createReq.Direccion, "direccion", "", "dirección")
	create.Flags().StringVar(&createReq.Telefono, "telefono", "", "teléfono")
	create.Flags().StringVar(&createReq.Email, "email", "", "email de contacto")
	create.Flags().StringVar(&createReq.HorarioApertura, "apertura", "", "horario de apertura (HH:MM)")
	create.Flags().StringVar(&createReq.HorarioCierre, "cierre", "", "horario de cierre (HH:MM)")
	create.Flags().StringVar(&createReq.DiasAtencion, "dias", "", "días de atención")
	create.Flags().Int64Var(&adminID, "admin", 0, "id del usuario administrador")
	create.Flags().Float64Var(&comision, "comision", 0, "comisión por defecto")
	create.MarkFlagRequired("nombre")
	create.MarkFlagRequired("direccion")

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Eliminar una sucursal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePermission(permissions.SucursalEliminar); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return appCtx.show(cmd.Context(), "/sucursales", func(ctx context.Context) error {
				return appCtx.Client.Sucursales().Delete(ctx, id)
			})
		},
	}

	cmd.AddCommand(list, get, create, rm)
	return cmd
}
