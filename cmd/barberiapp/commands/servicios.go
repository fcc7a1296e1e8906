package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barberiapp/admin-cli/api"
	"github.com/barberiapp/admin-cli/internal/utils"
	"github.com/barberiapp/admin-cli/permissions"
)

func serviciosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "servicios",
		Short: "Gestión del catálogo de servicios",
	}

	var sucursalID int64
	var page, size int
	list := &cobra.Command{
		Use:   "list",
		Short: "Listar servicios, opcionalmente por sucursal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.show(cmd.Context(), "/servicios", func(ctx context.Context) error {
				var result *api.Page[api.Servicio]
				var err error
				if sucursalID != 0 {
					result, err = appCtx.Client.Servicios().ListBySucursal(ctx, sucursalID, page, size)
				} else {
					result, err = appCtx.Client.Servicios().List(ctx, page, size)
				}
				if err != nil {
					return err
				}
				for _, s := range result.Content {
					fmt.Printf("%6d  %-12s  %-30s  $%10.2f  %d min\n",
						s.ID, s.Codigo, s.Nombre, s.Precio, s.DuracionMinutos)
				}
				fmt.Printf("página %d de %d (%d servicios)\n", result.Number+1, result.TotalPages, result.TotalElements)
				return nil
			})
		},
	}
	list.Flags().Int64Var(&sucursalID, "sucursal", 0, "filtrar por sucursal")
	list.Flags().IntVar(&page, "page", 0, "página")
	list.Flags().IntVar(&size, "size", 10, "tamaño de página")

	get := &cobra.Command{
		Use:   "get <id-o-codigo>",
		Short: "Ver un servicio por id o código",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.show(cmd.Context(), "/servicios", func(ctx context.Context) error {
				var s *api.Servicio
				if id, err := parseID(args[0]); err == nil {
					s, err = appCtx.Client.Servicios().Get(ctx, id)
					if err != nil {
						return err
					}
				} else {
					s, err = appCtx.Client.Servicios().GetByCodigo(ctx, args[0])
					if err != nil {
						return err
					}
				}
				fmt.Printf("%s (%s)\nPrecio: $%.2f  Duración: %d min\nSucursal: %s\n",
					s.Nombre, s.Codigo, s.Precio, s.DuracionMinutos, s.Sucursal.Nombre)
				for _, i := range s.InsumosUtilizados {
					fmt.Printf("  insumo: %s\n", i.Nombre)
				}
				return nil
			})
		},
	}

	var createReq api.ServicioRequest
	var duracion int
	create := &cobra.Command{
		Use:   "create",
		Short: "Crear un servicio",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePermission(permissions.ServicioCrear); err != nil {
				return err
			}
			if cmd.Flags().Changed("duracion") {
				createReq.DuracionMinutos = utils.Ptr(duracion)
			}
			return appCtx.show(cmd.Context(), "/servicios", func(ctx context.Context) error {
				s, err := appCtx.Client.Servicios().Create(ctx, createReq)
				if err != nil {
					return err
				}
				fmt.Printf("Servicio %d (%s) creado.\n", s.ID, s.Codigo)
				return nil
			})
		},
	}
	create.Flags().StringVar(&createReq.Codigo, "codigo", "", "código")
	create.Flags().StringVar(&createReq.Nombre, "nombre", "", "nombre")
	create.Flags().StringVar(&createReq.Descripcion, "descripcion", "", "descripción")
	create.Flags().Float64Var(&createReq.Precio, "precio", 0, "precio")
	create.Flags().Int64Var(&createReq.SucursalID, "sucursal", 0, "id de sucursal")
	create.Flags().IntVar(&duracion, "duracion", 0, "duración en minutos")
	create.Flags().Int64SliceVar(&createReq.InsumosUtilizadosIDs, "insumos", nil, "ids de productos usados como insumos")
	create.MarkFlagRequired("codigo")
	create.MarkFlagRequired("nombre")
	create.MarkFlagRequired("precio")
	create.MarkFlagRequired("sucursal")

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Eliminar un servicio",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePermission(permissions.ServicioEliminar); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return appCtx.show(cmd.Context(), "/servicios", func(ctx context.Context) error {
				return appCtx.Client.Servicios().Delete(ctx, id)
			})
		},
	}

	cmd.AddCommand(list, get, create, rm)
	return cmd
}
