package server

import (
	"context"
	"log/slog"
	"talentscout/app/config"
	"talentscout/app/service/dialogue"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/samber/do"
)

// Service is the HTTP boundary of the screening assistant. It only renders
// what the dialogue engine decides, no screening logic lives here.
type Service struct {
	cfg         *config.Config
	dialogueSvc *dialogue.Service
	app         *fiber.App
}

type messageRequest struct {
	Message string `json:"message"`
}

func New(di *do.Injector) (*Service, error) {
	s := &Service{
		cfg:         do.MustInvoke[*config.Config](di),
		dialogueSvc: do.MustInvoke[*dialogue.Service](di),
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	app.Use(recover.New())

	api := app.Group("/api")
	api.Post("/sessions", s.createSession)
	api.Post("/sessions/:id/messages", s.postMessage)
	api.Get("/sessions/:id", s.getSession)

	s.app = app

	return s, nil
}

func (s *Service) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()

		if err := s.app.Shutdown(); err != nil {
			slog.Error("Failed to shut down HTTP server", "error", err)
		}
	}()

	slog.Info("HTTP server listening", "address", s.cfg.Server.Listen)

	return s.app.Listen(s.cfg.Server.Listen)
}

func (s *Service) createSession(c *fiber.Ctx) error {
	id, session := s.dialogueSvc.CreateSession()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"session_id": id,
		"state":      session.State().String(),
	})
}

func (s *Service) postMessage(c *fiber.Ctx) error {
	session, ok := s.dialogueSvc.Session(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "session not found",
		})
	}

	var req messageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "message must not be empty",
		})
	}

	reply := session.Handle(c.UserContext(), req.Message)
	snapshot := session.Snapshot()

	return c.JSON(fiber.Map{
		"reply":                 reply,
		"state":                 snapshot.State,
		"completion_percentage": snapshot.CompletionPercentage,
	})
}

func (s *Service) getSession(c *fiber.Ctx) error {
	session, ok := s.dialogueSvc.Session(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "session not found",
		})
	}

	snapshot := session.Snapshot()

	return c.JSON(fiber.Map{
		"state":                 snapshot.State,
		"candidate_data":        snapshot.Profile,
		"technical_responses":   snapshot.TechnicalResponses,
		"completion_percentage": snapshot.CompletionPercentage,
		"technical_progress":    session.TechnicalProgress(),
	})
}
