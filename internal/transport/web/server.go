package web

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"github.com/sandevgo/advogado/internal/config"
	"github.com/sandevgo/advogado/internal/core"
	"github.com/sandevgo/advogado/internal/service/resolver"
	"github.com/sandevgo/advogado/pkg/log"
	"github.com/twilio/twilio-go/client"
)

const (
	sessionCookie  = "advogado_session"
	sessionUserKey = "user_id"
	sessionTTL     = 31 * 24 * time.Hour
)

type Resolver interface {
	Resolve(ctx context.Context, req resolver.Request) resolver.Result
}

type Server struct {
	app       *fiber.App
	addr      string
	resolver  Resolver
	sessions  *session.Store
	whatsapp  config.WhatsAppConfig
	validator *client.RequestValidator
}

var newUUID = func() string {
	return uuid.NewString()
}

func NewServer(ctx context.Context, r Resolver, addr string, wa *config.WhatsAppConfig) (*Server, error) {
	if r == nil {
		return nil, errors.New("web: resolver must not be nil")
	}
	if wa == nil {
		wa = &config.WhatsAppConfig{}
	}

	s := &Server{
		addr:     addr,
		resolver: r,
		whatsapp: *wa,
		sessions: session.New(session.Config{
			Expiration:     sessionTTL,
			KeyLookup:      "cookie:" + sessionCookie,
			CookieHTTPOnly: true,
			CookieSameSite: "Lax",
		}),
	}
	if wa.TwilioAuthToken != "" {
		v := client.NewRequestValidator(wa.TwilioAuthToken)
		s.validator = &v
	}

	s.app = fiber.New(fiber.Config{
		AppName:               core.BotName + " v" + core.BotVersion,
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	s.app.Use(recover.New())
	s.app.Use(requestLogger(ctx))
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.app.Get("/", s.index)
	s.app.Get("/health", s.health)

	api := s.app.Group("/api")
	api.Post("/chat", s.chat)
	api.Get("/whatsapp/webhook", s.verifyWhatsApp)
	api.Post("/whatsapp/webhook", s.whatsappMessage)
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("addr", s.addr).Msg("http server listening")
	return s.app.Listen(s.addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// requestLogger puts the process logger into every request context and logs
// one line per request.
func requestLogger(base context.Context) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.SetUserContext(base)
		start := time.Now()

		err := c.Next()

		log.FromCtx(base).Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("http request")
		return err
	}
}
