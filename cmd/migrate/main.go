// migrate aplica o revierte las migraciones del esquema.
//
// Uso: go run ./cmd/migrate [up|down|version]
package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/biztime-api/internal/infrastructure/postgres"
	"github.com/jhoicas/biztime-api/pkg/config"
	"github.com/jhoicas/biztime-api/pkg/logger"
)

func main() {
	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
	dsn := cfg.DB.ConnectionString()

	switch cmd {
	case "up":
		err = postgres.MigrateUp(dsn)
	case "down":
		err = postgres.MigrateDown(dsn)
	case "version":
		version, dirty, verr := postgres.MigrationVersion(dsn)
		if verr != nil {
			log.Fatal().Err(verr).Msg("leer versión")
		}
		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("versión del esquema")
		return
	default:
		fmt.Fprintf(os.Stderr, "comando desconocido %q (up | down | version)\n", cmd)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Str("cmd", cmd).Msg("migración")
	}
	log.Info().Str("cmd", cmd).Msg("migración aplicada")
}
