// migrate vuelca el catálogo semilla a la base de datos. Es un bootstrap
// one-shot: los ids ya existentes se ignoran, así que ejecutarlo dos veces
// no cambia nada.
package main

import (
	"context"

	"github.com/tienda-tech/inventario/internal/infrastructure/postgres"
	"github.com/tienda-tech/inventario/internal/infrastructure/seed"
	"github.com/tienda-tech/inventario/pkg/config"
	"github.com/tienda-tech/inventario/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}

	migrated, err := seed.Migrate(postgres.NewProductRepository(pool))
	if err != nil {
		log.Fatal().Err(err).Int("migrados", migrated).Msg("migración del catálogo semilla")
	}
	log.Info().Int("migrados", migrated).Msg("migración completada")
}
