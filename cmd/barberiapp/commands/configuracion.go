package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barberiapp/admin-cli/api"
	"github.com/barberiapp/admin-cli/permissions"
)

func configuracionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configuracion",
		Short: "Configuración del sistema",
	}

	var categoria string
	var soloEditables bool
	list := &cobra.Command{
		Use:   "list",
		Short: "Listar configuraciones",
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.show(cmd.Context(), "/configuracion", func(ctx context.Context) error {
				var configs []api.ConfiguracionSistema
				var err error
				switch {
				case categoria != "":
					configs, err = appCtx.Client.Configuraciones().ListByCategoria(ctx, categoria)
				case soloEditables:
					configs, err = appCtx.Client.Configuraciones().ListEditable(ctx)
				default:
					configs, err = appCtx.Client.Configuraciones().ListAll(ctx)
				}
				if err != nil {
					return err
				}
				for _, c := range configs {
					fmt.Printf("%6d  %-35s = %-20s  [%s]\n", c.ID, c.Clave, c.Valor, c.Categoria)
				}
				return nil
			})
		},
	}
	list.Flags().StringVar(&categoria, "categoria", "", "filtrar por categoría")
	list.Flags().BoolVar(&soloEditables, "editables", false, "sólo configuraciones editables")

	set := &cobra.Command{
		Use:   "set <id> <valor>",
		Short: "Cambiar el valor de una configuración",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePermission(permissions.ConfigEditar); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return appCtx.show(cmd.Context(), "/configuracion", func(ctx context.Context) error {
				c, err := appCtx.Client.Configuraciones().Update(ctx, id, api.ConfiguracionSistemaRequest{Valor: args[1]})
				if err != nil {
					return err
				}
				fmt.Printf("%s = %s\n", c.Clave, c.Valor)
				return nil
			})
		},
	}

	var createReq api.ConfiguracionSistemaRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Crear una configuración",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePermission(permissions.ConfigEditar); err != nil {
				return err
			}
			return appCtx.show(cmd.Context(), "/configuracion", func(ctx context.Context) error {
				c, err := appCtx.Client.Configuraciones().Create(ctx, createReq)
				if err != nil {
					return err
				}
				fmt.Printf("Configuración %d (%s) creada.\n", c.ID, c.Clave)
				return nil
			})
		},
	}
	create.Flags().StringVar(&createReq.Clave, "clave", "", "clave")
	create.Flags().StringVar(&createReq.Valor, "valor", "", "valor")
	create.Flags().StringVar(&createReq.Tipo, "tipo", "", "tipo de dato")
	create.Flags().StringVar(&createReq.Descripcion, "descripcion", "", "descripción")
	create.Flags().StringVar(&createReq.Categoria, "categoria", "", "categoría")
	create.MarkFlagRequired("clave")

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Eliminar una configuración",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePermission(permissions.ConfigEditar); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return appCtx.show(cmd.Context(), "/configuracion", func(ctx context.Context) error {
				return appCtx.Client.Configuraciones().Delete(ctx, id)
			})
		},
	}

	cmd.AddCommand(list, set, create, rm)
	return cmd
}
