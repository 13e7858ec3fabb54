package api

import (
	"net"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// ServerConfig holds the fiber settings taken from config.APIConfig
type ServerConfig struct {
	IdleTimeout    time.Duration
	RequestLogging bool
}

// Handlers groups everything the router dispatches to
type Handlers struct {
	Users   UserHandler
	Metrics MetricsHandler
	Health  fiber.Handler
}

// Server is the fiber application serving the user API
type Server struct {
	app *fiber.App
}

// NewServer creates the fiber app with middleware and every route registered
func NewServer(cfg ServerConfig, h Handlers) *Server {
	app := fiber.New(fiber.Config{
		IdleTimeout: cfg.IdleTimeout,
		// startup is reported by the bootstrap
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	if cfg.RequestLogging {
		app.Use(logger.New())
	}

	// redirect to swagger docs
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/swagger/", fiber.StatusMovedPermanently)
	})

	app.Get("/health", h.Health)
	app.Get("/swagger/*", swagger.HandlerDefault)

	users := app.Group("/users")
	users.Post("/", h.Users.CreateUser)
	users.Get("/", h.Users.ListUsers)
	users.Get("/:id", h.Users.GetUser)
	users.Patch("/:id", h.Users.UpdateUser)
	users.Delete("/:id", h.Users.DeleteUser)

	app.Get("/metrics", h.Metrics.GetMetrics)

	return &Server{app: app}
}

// App exposes the underlying fiber application, mainly for app.Test
func (s *Server) App() *fiber.App {
	return s.app
}

// Start binds ":"+port and serves until Shutdown. onReady runs from fiber's
// OnListen hook, which fires only after the listener socket exists.
func (s *Server) Start(port string, onReady func()) error {
	s.onListen(onReady)
	return s.app.Listen(":" + port)
}

// Serve is Start for an already bound listener
func (s *Server) Serve(ln net.Listener, onReady func()) error {
	s.onListen(onReady)
	return s.app.Listener(ln)
}

func (s *Server) onListen(onReady func()) {
	s.app.Hooks().OnListen(func(fiber.ListenData) error {
		onReady()
		return nil
	})
}

// Shutdown stops accepting connections and makes Start/Serve return nil
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
