// Package server implements the scicalc HTTP API.
package server

import (
	"errors"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/zephyrtronium/scicalc"
)

// Server is the scicalc API server.
type Server struct {
	app   *fiber.App
	log   *slog.Logger
	opts  []scicalc.Option
	cache *cache
}

// New creates a new API server. cacheSize is the number of results to keep
// in memory; zero or negative disables caching. The options are used for
// every evaluation.
func New(log *slog.Logger, cacheSize int, opts ...scicalc.Option) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	srv := &Server{
		log:   log,
		opts:  opts,
		cache: newCache(cacheSize),
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		BodyLimit:             64 << 10,
	})
	app.Use(srv.logRequest)

	app.Post("/v1/solve", srv.solve)
	app.Get("/v1/builtins", srv.builtins)
	app.Get("/healthz", srv.health)

	srv.app = app
	return srv
}

// Listen starts the HTTP server on the given address.
func (s *Server) Listen(addr string) error {
	s.log.Info("listening", "addr", addr)
	return s.app.Listen(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App returns the underlying Fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) logRequest(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	s.log.Debug("request",
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
		"duration", time.Since(start),
	)
	return err
}

type solveRequest struct {
	Expression string `json:"expression"`
}

type solveResponse struct {
	Expression string `json:"expression"`
	// Result is nil when the value is infinite or NaN, which JSON can't hold.
	Result *float64 `json:"result"`
	Text   string   `json:"text"`
}

func (s *Server) solve(c *fiber.Ctx) error {
	var req solveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    fiber.StatusBadRequest,
				"message": "invalid request body: " + err.Error(),
				"status":  "INVALID_ARGUMENT",
			},
		})
	}

	e, ok := s.cache.get(req.Expression)
	if ok {
		s.log.Debug("cache hit", "expr", req.Expression)
	} else {
		e.expr = req.Expression
		e.result, e.err = scicalc.Solve(req.Expression, s.opts...)
		s.cache.put(e.expr, e.result, e.err)
	}
	if e.err != nil {
		s.log.Info("rejected expression", "expr", req.Expression, "err", e.err)
		body := fiber.Map{
			"code":    fiber.StatusBadRequest,
			"message": e.err.Error(),
			"status":  "INVALID_ARGUMENT",
			"kind":    errorKind(e.err),
		}
		var ie scicalc.InputError
		if errors.As(e.err, &ie) {
			body["pos"] = ie.Pos()
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": body})
	}

	resp := solveResponse{
		Expression: req.Expression,
		Text:       strconv.FormatFloat(e.result, 'g', -1, 64),
	}
	if !math.IsInf(e.result, 0) && !math.IsNaN(e.result) {
		r := e.result
		resp.Result = &r
	}
	return c.JSON(resp)
}

type builtinResponse struct {
	Name      string   `json:"name"`
	Kind      string   `json:"kind"`
	Spellings []string `json:"spellings"`
	Prec      int      `json:"prec,omitempty"`
	// Value is text so that the infinities survive encoding.
	Value string `json:"value,omitempty"`
}

func (s *Server) builtins(c *fiber.Ctx) error {
	bs := scicalc.Builtins()
	r := make([]builtinResponse, 0, len(bs))
	for _, b := range bs {
		br := builtinResponse{
			Name:      b.Name,
			Kind:      b.Kind.String(),
			Spellings: b.Spellings,
			Prec:      b.Prec,
		}
		if b.Kind == scicalc.TokenConst {
			br.Value = strconv.FormatFloat(b.Value, 'g', -1, 64)
		}
		r = append(r, br)
	}
	return c.JSON(fiber.Map{"builtins": r})
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// errorKind names the class of a solver error.
func errorKind(err error) string {
	switch {
	case errors.Is(err, scicalc.ErrMalformedToken):
		return "MalformedToken"
	case errors.Is(err, scicalc.ErrUnbalancedParentheses):
		return "UnbalancedParentheses"
	case errors.Is(err, scicalc.ErrMismatchedOperandCount):
		return "MismatchedOperandCount"
	case errors.Is(err, scicalc.ErrDanglingUnaryOperator):
		return "DanglingUnaryOperator"
	case errors.Is(err, scicalc.ErrMalformedGroup):
		return "MalformedGroup"
	case errors.Is(err, scicalc.ErrNestingTooDeep):
		return "NestingTooDeep"
	default:
		return "Unknown"
	}
}
