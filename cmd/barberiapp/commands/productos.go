package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barberiapp/admin-cli/api"
	"github.com/barberiapp/admin-cli/internal/utils"
	"github.com/barberiapp/admin-cli/permissions"
)

func productosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "productos",
		Short: "Gestión de inventario de productos",
	}

	var sucursalID int64
	var page, size int
	list := &cobra.Command{
		Use:   "list",
		Short: "Listar productos, opcionalmente por sucursal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.show(cmd.Context(), "/productos", func(ctx context.Context) error {
				var result *api.Page[api.Producto]
				var err error
				if sucursalID != 0 {
					result, err = appCtx.Client.Productos().ListBySucursal(ctx, sucursalID, page, size)
				} else {
					result, err = appCtx.Client.Productos().List(ctx, page, size)
				}
				if err != nil {
					return err
				}
				for _, p := range result.Content {
					warn := ""
					if p.StockBajo {
						warn = "  STOCK BAJO"
					}
					fmt.Printf("%6d  %-12s  %-30s  $%10.2f  stock %4d%s\n",
						p.ID, p.Codigo, p.Nombre, p.PrecioVenta, p.StockActual, warn)
				}
				fmt.Printf("página %d de %d (%d productos)\n", result.Number+1, result.TotalPages, result.TotalElements)
				return nil
			})
		},
	}
	list.Flags().Int64Var(&sucursalID, "sucursal", 0, "filtrar por sucursal")
	list.Flags().IntVar(&page, "page", 0, "página")
	list.Flags().IntVar(&size, "size", 10, "tamaño de página")

	get := &cobra.Command{
		Use:   "get <id-o-codigo>",
		Short: "Ver un producto por id o código",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.show(cmd.Context(), "/productos", func(ctx context.Context) error {
				var p *api.Producto
				if id, err := parseID(args[0]); err == nil {
					p, err = appCtx.Client.Productos().Get(ctx, id)
					if err != nil {
						return err
					}
				} else {
					p, err = appCtx.Client.Productos().GetByCodigo(ctx, args[0])
					if err != nil {
						return err
					}
				}
				fmt.Printf("%s (%s)\nPrecio: $%.2f  Costo: $%.2f  IVA: %s\nStock: %d (mínimo %d)\nSucursal: %s\n",
					p.Nombre, p.Codigo, p.PrecioVenta, p.PrecioCosto,
					boolWord(p.TieneIVA, "sí", "no"), p.StockActual, p.StockMinimo, p.Sucursal.Nombre)
				return nil
			})
		},
	}

	lowStock := &cobra.Command{
		Use:   "stock-bajo <sucursal-id>",
		Short: "Productos bajo el stock mínimo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return appCtx.show(cmd.Context(), "/productos", func(ctx context.Context) error {
				bajos, err := appCtx.Client.Productos().ListLowStock(ctx, id)
				if err != nil {
					return err
				}
				for _, p := range bajos {
					fmt.Printf("%6d  %-30s  stock %d de mínimo %d\n", p.ID, p.Nombre, p.StockActual, p.StockMinimo)
				}
				return nil
			})
		},
	}

	var cantidad int
	stock := &cobra.Command{
		Use:   "stock <id>",
		Short: "Ajustar el stock de un producto",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePermission(permissions.ProductoEditar); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			tipo := api.StockIncremento
			if cantidad < 0 {
				tipo = api.StockDecremento
				cantidad = -cantidad
			}
			return appCtx.show(cmd.Context(), "/productos", func(ctx context.Context) error {
				p, err := appCtx.Client.Productos().UpdateStock(ctx, id, cantidad, tipo)
				if err != nil {
					return err
				}
				fmt.Printf("Stock de %s ahora %d.\n", p.Nombre, p.StockActual)
				return nil
			})
		},
	}
	stock.Flags().IntVar(&cantidad, "cantidad", 0, "cantidad a sumar (negativa para restar)")
	stock.MarkFlagRequired("cantidad")

	var createReq api.ProductoRequest
	var stockInicial, stockMin int
	create := &cobra.Command{
		Use:   "create",
		Short: "Crear un producto",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePermission(permissions.ProductoCrear); err != nil {
				return err
			}
			if cmd.Flags().Changed("stock") {
				createReq.StockActual = utils.Ptr(stockInicial)
			}
			if cmd.Flags().Changed("stock-minimo") {
				createReq.StockMinimo = utils.Ptr(stockMin)
			}
			return appCtx.show(cmd.Context(), "/productos", func(ctx context.Context) error {
				p, err := appCtx.Client.Productos().Create(ctx, createReq)
				if err != nil {
					return err
				}
				fmt.Printf("Producto %d (%s) creado.\n", p.ID, p.Codigo)
				return nil
			})
		},
	}
	create.Flags().StringVar(&createReq.Codigo, "codigo", "", "código")
	create.Flags().StringVar(&createReq.Nombre, "nombre", "", "nombre")
	create.Flags().StringVar(&createReq.Descripcion, "descripcion", "", "descripción")
	create.Flags().Float64Var(&createReq.PrecioVenta, "precio", 0, "precio de venta")
	create.Flags().Int64Var(&createReq.SucursalID, "sucursal", 0, "id de sucursal")
	create.Flags().IntVar(&stockInicial, "stock", 0, "stock inicial")
	create.Flags().IntVar(&stockMin, "stock-minimo", 0, "stock mínimo")
	create.MarkFlagRequired("codigo")
	create.MarkFlagRequired("nombre")
	create.MarkFlagRequired("precio")
	create.MarkFlagRequired("sucursal")

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Eliminar un producto",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePermission(permissions.ProductoEliminar); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return appCtx.show(cmd.Context(), "/productos", func(ctx context.Context) error {
				return appCtx.Client.Productos().Delete(ctx, id)
			})
		},
	}

	cmd.AddCommand(list, get, lowStock, stock, create, rm)
	return cmd
}
