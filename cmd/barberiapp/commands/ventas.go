package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/barberiapp/admin-cli/api"
	"github.com/barberiapp/admin-cli/internal/utils"
	"github.com/barberiapp/admin-cli/permissions"
)

func ventasCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ventas",
		Short: "Registro y consulta de ventas",
	}

	var page, size int
	var sucursalID int64
	var desde, hasta string
	list := &cobra.Command{
		Use:   "list",
		Short: "Listar ventas",
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.show(cmd.Context(), "/ventas", func(ctx context.Context) error {
				var ventas []api.Venta
				switch {
				case sucursalID != 0:
					vs, err := appCtx.Client.Ventas().ListBySucursal(ctx, sucursalID)
					if err != nil {
						return err
					}
					ventas = vs
				case desde != "" && hasta != "":
					vs, err := appCtx.Client.Ventas().ListByDateRange(ctx, desde, hasta)
					if err != nil {
						return err
					}
					ventas = vs
				default:
					result, err := appCtx.Client.Ventas().List(ctx, page, size)
					if err != nil {
						return err
					}
					ventas = result.Content
				}
				for _, v := range ventas {
					fmt.Printf("%6d  %-14s  %-19s  %-20s  $%10.2f  %s\n",
						v.ID, v.NumeroVenta, v.FechaVenta, v.TrabajadorNombre, v.Total, v.MetodoPago)
				}
				return nil
			})
		},
	}
	list.Flags().IntVar(&page, "page", 0, "página")
	list.Flags().IntVar(&size, "size", 10, "tamaño de página")
	list.Flags().Int64Var(&sucursalID, "sucursal", 0, "filtrar por sucursal")
	list.Flags().StringVar(&desde, "desde", "", "fecha inicial (YYYY-MM-DD)")
	list.Flags().StringVar(&hasta, "hasta", "", "fecha final (YYYY-MM-DD)")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Ver una venta con su detalle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return appCtx.show(cmd.Context(), "/ventas", func(ctx context.Context) error {
				v, err := appCtx.Client.Ventas().Get(ctx, id)
				if err != nil {
					return err
				}
				fmt.Printf("Venta %s del %s\nTrabajador: %s  Sucursal: %s\n",
					v.NumeroVenta, v.FechaVenta, v.TrabajadorNombre, v.SucursalNombre)
				for _, d := range v.Detalles {
					fmt.Printf("  %dx %-30s $%.2f\n", d.Cantidad, d.Descripcion, d.Subtotal)
				}
				fmt.Printf("Subtotal $%.2f  IVA $%.2f  Total $%.2f\n", v.Subtotal, v.IVA, v.Total)
				return nil
			})
		},
	}

	var req api.VentaRequest
	var clienteID int64
	var items []string
	create := &cobra.Command{
		Use:   "create",
		Short: "Registrar una venta",
		Long: "Registra una venta. Cada --item tiene la forma tipo:id:cantidad:precio,\n" +
			"donde tipo es PRODUCTO o SERVICIO.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePermission(permissions.VentaCrear); err != nil {
				return err
			}
			if cmd.Flags().Changed("cliente") {
				req.ClienteID = utils.Ptr(clienteID)
			}
			detalles, err := parseItems(items)
			if err != nil {
				return err
			}
			req.Detalles = detalles
			return appCtx.show(cmd.Context(), "/ventas", func(ctx context.Context) error {
				v, err := appCtx.Client.Ventas().Create(ctx, req)
				if err != nil {
					return err
				}
				fmt.Printf("Venta %s registrada, total $%.2f.\n", v.NumeroVenta, v.Total)
				return nil
			})
		},
	}
	create.Flags().Int64Var(&req.TrabajadorID, "trabajador", 0, "id del trabajador")
	create.Flags().Int64Var(&req.SucursalID, "sucursal", 0, "id de sucursal")
	create.Flags().Int64Var(&clienteID, "cliente", 0, "id del cliente")
	create.Flags().StringVar(&req.MetodoPago, "metodo-pago", "", "código del método de pago")
	create.Flags().StringSliceVar(&items, "item", nil, "ítem tipo:id:cantidad:precio (repetible)")
	create.Flags().StringVar(&req.Observaciones, "observaciones", "", "observaciones")
	create.MarkFlagRequired("trabajador")
	create.MarkFlagRequired("sucursal")
	create.MarkFlagRequired("metodo-pago")
	create.MarkFlagRequired("item")

	void := &cobra.Command{
		Use:   "anular <id>",
		Short: "Anular una venta",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePermission(permissions.VentaEliminar); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return appCtx.show(cmd.Context(), "/ventas", func(ctx context.Context) error {
				return appCtx.Client.Ventas().Void(ctx, id)
			})
		},
	}

	var out string
	receipt := &cobra.Command{
		Use:   "comprobante <id>",
		Short: "Descargar el comprobante de una venta",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return appCtx.show(cmd.Context(), "/ventas", func(ctx context.Context) error {
				data, err := appCtx.Client.Ventas().Receipt(ctx, id)
				if err != nil {
					return err
				}
				if out == "" {
					out = fmt.Sprintf("venta-%d.pdf", id)
				}
				if err := os.WriteFile(out, data, 0o644); err != nil {
					return err
				}
				fmt.Printf("Comprobante guardado en %s.\n", out)
				return nil
			})
		},
	}
	receipt.Flags().StringVarP(&out, "output", "o", "", "archivo de salida")

	cmd.AddCommand(list, get, create, void, receipt)
	return cmd
}

func parseItems(items []string) ([]api.DetalleVentaRequest, error) {
	detalles := make([]api.DetalleVentaRequest, 0, len(items))
	for _, item := range items {
		parts := strings.Split(item, ":")
		if len(parts) != 4 {
			return nil, fmt.Errorf("ítem %q inválido, se espera tipo:id:cantidad:precio", item)
		}
		tipo := strings.ToUpper(parts[0])
		if tipo != api.ItemProducto && tipo != api.ItemServicio {
			return nil, fmt.Errorf("tipo de ítem %q desconocido", parts[0])
		}
		id, err := parseID(parts[1])
		if err != nil {
			return nil, err
		}
		var cantidad int
		if _, err := fmt.Sscanf(parts[2], "%d", &cantidad); err != nil {
			return nil, fmt.Errorf("cantidad inválida en %q", item)
		}
		var precio float64
		if _, err := fmt.Sscanf(parts[3], "%f", &precio); err != nil {
			return nil, fmt.Errorf("precio inválido en %q", item)
		}
		detalle := api.DetalleVentaRequest{
			TipoItem:       tipo,
			Cantidad:       cantidad,
			PrecioUnitario: precio,
		}
		if tipo == api.ItemProducto {
			detalle.ProductoID = utils.Ptr(id)
		} else {
			detalle.ServicioID = utils.Ptr(id)
		}
		detalles = append(detalles, detalle)
	}
	return detalles, nil
}
