package main

import (
	"os"

	"github.com/yigit/registro-academico/internal/pkg/logger"
	"github.com/yigit/registro-academico/internal/server"
)

// @title Registro Académico API
// @version 1.0
// @description API REST para la gestión de carreras, docentes, estudiantes, asignaturas, matrículas, actividades, asistencias y notas.

// @contact.name Soporte
// @contact.email soporte@registro-academico.local

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Token JWT con el formato "Bearer <token>"

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Setup failures are logged where they happen
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
