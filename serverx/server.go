package serverx

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Abraxas-365/wsapix/actionx"
	"github.com/Abraxas-365/wsapix/docx"
	"github.com/Abraxas-365/wsapix/errx"
	"github.com/Abraxas-365/wsapix/flowx"
	"github.com/Abraxas-365/wsapix/logx"
	"github.com/Abraxas-365/wsapix/triggerx"
)

var (
	serverErrors = errx.NewRegistry("SERVER")

	ErrInvalidBody = serverErrors.Register("INVALID_BODY", errx.TypeBadRequest, http.StatusBadRequest, "Request body must be {items: [object], continueOnFail: bool}")
	ErrNotFound    = serverErrors.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Route not found")
)

// Executor runs actions
type Executor interface {
	Execute(ctx context.Context, inv actionx.Invocation) ([]flowx.Record, error)
}

// Webhook handles deliveries
type Webhook interface {
	Handle(ctx context.Context, r triggerx.Request) triggerx.Outcome
}

type Config struct {
	WebhookPath string
	BaseURL     string
}

// Server is the HTTP host for actions, the webhook and the catalog
type Server struct {
	app     *fiber.App
	actions Executor
	webhook Webhook
	logger  *logx.Logger
}

// New registers every route. docs may be nil, which leaves the catalog
// route out.
func New(cfg Config, actions Executor, webhook Webhook, docs *docx.Generator) *Server {
	if cfg.WebhookPath == "" {
		cfg.WebhookPath = "/webhook/wsapi"
	}

	s := &Server{
		app: fiber.New(fiber.Config{
			DisableStartupMessage: true,
			ErrorHandler:          errorHandler,
		}),
		actions: actions,
		webhook: webhook,
		logger:  logx.GetLogger(),
	}

	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	s.app.Post(cfg.WebhookPath, s.handleWebhook)

	v1 := s.app.Group("/v1")
	v1.Post("/actions/:resource/:operation", s.handleAction)
	if docs != nil {
		docs.Router().RegisterWithFiber(v1, "/actions", docx.NewCurlGenerator(cfg.BaseURL))
	}

	s.app.Use(func(c *fiber.Ctx) error {
		return serverErrors.New(ErrNotFound).WithDetail("path", c.Path())
	})
	return s
}

// App exposes the fiber app, for tests and embedding
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen blocks until the server stops
func (s *Server) Listen(addr string) error {
	s.logger.Info("listening on %s", addr)
	return s.app.Listen(addr)
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down")
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) handleWebhook(c *fiber.Ctx) error {
	headers := http.Header{}
	c.Request().Header.VisitAll(func(key, value []byte) {
		headers.Add(string(key), string(value))
	})

	out := s.webhook.Handle(c.UserContext(), triggerx.Request{Headers: headers, Body: c.Body()})
	return c.Status(out.Status).JSON(out.Body)
}

type actionBody struct {
	Items          []map[string]any `json:"items"`
	ContinueOnFail bool             `json:"continueOnFail"`
}

func (s *Server) handleAction(c *fiber.Ctx) error {
	var body actionBody
	if raw := c.Body(); len(raw) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			return serverErrors.NewWithCause(ErrInvalidBody, err)
		}
	}

	inv := actionx.Invocation{
		Resource:       c.Params("resource"),
		Operation:      c.Params("operation"),
		ContinueOnFail: body.ContinueOnFail,
	}
	for _, item := range body.Items {
		if item == nil {
			item = map[string]any{}
		}
		inv.Items = append(inv.Items, flowx.MapParams(item))
	}

	records, err := s.actions.Execute(c.UserContext(), inv)
	if err != nil {
		return err
	}
	if records == nil {
		records = []flowx.Record{}
	}
	return c.JSON(fiber.Map{"records": records})
}

// errorHandler writes every error in the errx shape
func errorHandler(c *fiber.Ctx, err error) error {
	if xerr, ok := errx.As(err); ok {
		if xerr.Status() >= http.StatusInternalServerError {
			logx.Error("%s %s: %s", c.Method(), c.Path(), xerr.String())
		}
		return xerr.ToFiber(c)
	}
	if ferr, ok := err.(*fiber.Error); ok {
		xerr := errx.New(ferr.Message, errx.TypeBadRequest)
		xerr.HTTPStatus = ferr.Code
		return xerr.ToFiber(c)
	}
	logx.Error("%s %s: %v", c.Method(), c.Path(), err)
	return errx.Wrap(err, "Internal server error", errx.TypeInternal).ToFiber(c)
}
