package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/barberiapp/admin-cli/api"
)

func contabilidadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contabilidad",
		Short: "Consultas contables",
	}

	var filter api.ContabilidadFilter
	addFilterFlags := func(c *cobra.Command) {
		c.Flags().Int64Var(&filter.SucursalID, "sucursal", 0, "filtrar por sucursal")
		c.Flags().StringVar(&filter.FechaInicio, "desde", "", "fecha inicial (YYYY-MM-DD)")
		c.Flags().StringVar(&filter.FechaFin, "hasta", "", "fecha final (YYYY-MM-DD)")
	}

	registros := &cobra.Command{
		Use:   "registros",
		Short: "Listar registros contables",
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.show(cmd.Context(), "/contabilidad", func(ctx context.Context) error {
				regs, err := appCtx.Client.Contabilidad().ListRegistros(ctx, filter)
				if err != nil {
					return err
				}
				for _, r := range regs {
					fmt.Printf("%6d  %-19s  %-10s  %-20s  $%12.2f  %s\n",
						r.ID, r.FechaRegistro, r.TipoRegistro, r.Categoria, r.Monto, r.Descripcion)
				}
				return nil
			})
		},
	}
	addFilterFlags(registros)

	resumen := &cobra.Command{
		Use:   "resumen",
		Short: "Resumen de ingresos y egresos",
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.show(cmd.Context(), "/contabilidad", func(ctx context.Context) error {
				r, err := appCtx.Client.Contabilidad().Resumen(ctx, filter)
				if err != nil {
					return err
				}
				fmt.Printf("Ingresos: $%.2f\nEgresos:  $%.2f\nBalance:  $%.2f\n",
					r.TotalIngresos, r.TotalEgresos, r.Balance)
				return nil
			})
		},
	}
	addFilterFlags(resumen)

	var out, formato string
	export := &cobra.Command{
		Use:   "export",
		Short: "Exportar registros a PDF o Excel",
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.show(cmd.Context(), "/contabilidad", func(ctx context.Context) error {
				var data []byte
				var err error
				switch formato {
				case "pdf":
					data, err = appCtx.Client.Contabilidad().ExportPDF(ctx, filter)
				case "excel":
					data, err = appCtx.Client.Contabilidad().ExportExcel(ctx, filter)
				default:
					return fmt.Errorf("formato %q desconocido, usa pdf o excel", formato)
				}
				if err != nil {
					return err
				}
				if out == "" {
					out = "contabilidad." + map[string]string{"pdf": "pdf", "excel": "xlsx"}[formato]
				}
				if err := os.WriteFile(out, data, 0o644); err != nil {
					return err
				}
				fmt.Printf("Exportado a %s.\n", out)
				return nil
			})
		},
	}
	addFilterFlags(export)
	export.Flags().StringVar(&formato, "formato", "pdf", "pdf o excel")
	export.Flags().StringVarP(&out, "output", "o", "", "archivo de salida")

	cmd.AddCommand(registros, resumen, export)
	return cmd
}
