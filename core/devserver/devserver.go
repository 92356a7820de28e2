package devserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"moodbank/core/build"
	"moodbank/core/middleware/accesslog"
	"moodbank/core/middleware/rayid"
	"moodbank/core/proxy"
	"moodbank/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Options tune the development server beyond what the descriptor declares.
type Options struct {
	// Host restricts the listen address. Empty listens on every interface.
	Host string
	// ProxyTimeout bounds a single proxied round trip.
	ProxyTimeout time.Duration
	// Logger defaults to a no-op logger.
	Logger *zap.Logger
	// Exclude lists files under root that are never served, on top of the
	// names build.Private rejects.
	Exclude []string
}

// Server serves the project root and forwards proxied prefixes.
type Server struct {
	desc   server.Descriptor
	root   string
	opts   Options
	app    *fiber.App
	logger *zap.Logger

	mu   sync.Mutex
	ln   net.Listener
	done chan error
}

// ErrAlreadyStarted is returned by Start when called twice.
var ErrAlreadyStarted = errors.New("dev server already started")

// New validates the descriptor and assembles the fiber app.
// Nothing is bound until Start.
func New(desc server.Descriptor, opts Options) (*Server, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}

	root, err := filepath.Abs(desc.Root)
	if err != nil {
		return nil, fmt.Errorf("resolve root %q: %w", desc.Root, err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("invalid root %q: %w", desc.Root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("invalid root %q: not a directory", desc.Root)
	}

	table, err := proxy.NewTable(desc.ProxyRules)
	if err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("component", "devserver"))

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "moodbank dev server",
	})
	app.Use(rayid.New())
	app.Use(accesslog.New(log))
	app.Use(proxy.New(table, proxy.Config{Timeout: opts.ProxyTimeout, Logger: log}))
	app.Use(privateGuard(root, build.NewPathSet(opts.Exclude)))
	app.Static("/", root, fiber.Static{
		Index:         "index.html",
		Browse:        false,
		CacheDuration: -1,
	})
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).SendString("Not Found")
	})

	return &Server{
		desc:   desc.Clone(),
		root:   root,
		opts:   opts,
		app:    app,
		logger: log,
	}, nil
}

// privateGuard answers 404 for files the build would never emit, so the dev
// server exposes exactly what a build publishes.
func privateGuard(root string, exclude build.PathSet) fiber.Handler {
	notFound := func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).SendString("Not Found")
	}
	return func(c *fiber.Ctx) error {
		// Check both the raw and the decoded, normalized path the file
		// server will resolve.
		for _, p := range []string{c.Path(), string(c.Context().URI().Path())} {
			if build.PrivatePath(p) {
				return notFound(c)
			}
			if exclude.Has(filepath.Join(root, filepath.FromSlash(p))) {
				return notFound(c)
			}
		}
		return c.Next()
	}
}

// App exposes the underlying fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Root returns the absolute project root being served.
func (s *Server) Root() string {
	return s.root
}

// Start binds the configured port and serves in the background.
// The bind happens before Start returns, so a port that is already in use is
// reported here rather than asynchronously.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ln != nil {
		return ErrAlreadyStarted
	}

	addr := net.JoinHostPort(s.opts.Host, strconv.Itoa(s.desc.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("bind dev server port %d: %w", s.desc.Port, err)
	}
	s.ln = ln
	s.done = make(chan error, 1)

	s.logger.Info("Starting dev server",
		zap.String("addr", ln.Addr().String()),
		zap.String("root", s.root),
		zap.Int("proxy_rules", len(s.desc.ProxyRules)),
	)
	for prefix, target := range s.desc.ProxyRules {
		s.logger.Debug("Proxy rule", zap.String("prefix", prefix), zap.String("target", target))
	}

	go func() {
		s.done <- s.app.Listener(ln)
	}()
	return nil
}

// Addr returns the bound address, or nil before Start.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Wait blocks until the server stops serving.
func (s *Server) Wait() error {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	if done == nil {
		return nil
	}
	return <-done
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	started := s.ln != nil
	s.mu.Unlock()
	if !started {
		return nil
	}

	s.logger.Info("Shutting down dev server")
	return s.app.ShutdownWithContext(ctx)
}
