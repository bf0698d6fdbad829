package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/biztime-api/pkg/logger"
)

// NewApp crea la app Fiber con el ErrorHandler JSON y la cadena base de middlewares.
// RequestLogger va por fuera de recover: un panic recuperado llega como error y queda
// registrado con status 500.
func NewApp(cfg fiber.Config, log *logger.Logger) *fiber.App {
	cfg.ErrorHandler = ErrorHandler(log)
	app := fiber.New(cfg)
	app.Use(RequestLogger(log))
	app.Use(recover.New())
	return app
}
