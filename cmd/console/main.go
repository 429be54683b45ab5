// console es el menú de gestión del inventario para la terminal. El
// subcomando por defecto abre el menú interactivo; list y stats permiten
// consultas directas sin entrar al menú.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/tienda-tech/inventario/internal/application/usecase"
	"github.com/tienda-tech/inventario/internal/infrastructure/postgres"
	"github.com/tienda-tech/inventario/internal/interfaces/console"
	"github.com/tienda-tech/inventario/pkg/config"
	"github.com/tienda-tech/inventario/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:  "tienda-console",
		Usage: "gestión del inventario de la tienda desde la terminal",
		Commands: []*cli.Command{
			{
				Name:  "menu",
				Usage: "abrir el menú interactivo",
				Action: func(c *cli.Context) error {
					inv, cleanup, err := buildInventory()
					if err != nil {
						return err
					}
					defer cleanup()
					console.NewMenu(inv, os.Stdin, os.Stdout).Run()
					return nil
				},
			},
			{
				Name:  "list",
				Usage: "listar todos los productos",
				Action: func(c *cli.Context) error {
					inv, cleanup, err := buildInventory()
					if err != nil {
						return err
					}
					defer cleanup()
					for _, p := range inv.All() {
						fmt.Println(p)
					}
					return nil
				},
			},
			{
				Name:  "stats",
				Usage: "mostrar estadísticas del inventario",
				Action: func(c *cli.Context) error {
					inv, cleanup, err := buildInventory()
					if err != nil {
						return err
					}
					defer cleanup()
					stats := inv.Statistics()
					fmt.Printf("Total de productos: %d\n", stats.TotalProducts)
					fmt.Printf("Valor total del inventario: $%s\n", stats.TotalValue.StringFixed(2))
					for category, count := range stats.CountByCategory {
						fmt.Printf("  - %s: %d productos\n", category, count)
					}
					return nil
				},
			},
		},
		// Sin subcomando se abre el menú interactivo.
		Action: func(c *cli.Context) error {
			inv, cleanup, err := buildInventory()
			if err != nil {
				return err
			}
			defer cleanup()
			console.NewMenu(inv, os.Stdin, os.Stdout).Run()
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// buildInventory conecta a la BD y carga el inventario completo.
func buildInventory() (*usecase.InventoryUseCase, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("crear esquema: %w", err)
	}
	inv := usecase.NewInventoryUseCase(postgres.NewProductRepository(pool), log)
	return inv, pool.Close, nil
}
