// Package server renders the portfolio and fronts the chat and mail relay services.
package server

import (
	"context"
	"embed"
	"html/template"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/Tarun-surendra/portfolio/internal/chat"
	"github.com/Tarun-surendra/portfolio/internal/config"
	"github.com/Tarun-surendra/portfolio/internal/contact"
	"github.com/Tarun-surendra/portfolio/internal/content"
	"github.com/Tarun-surendra/portfolio/internal/nav"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Options wires the server's collaborators.
type Options struct {
	Config    config.ServerConfig
	Portfolio *content.Portfolio
	Chat      *chat.Service
	Relay     contact.Relay
	// ToName is the recipient name placed in relayed messages.
	ToName string
}

// Server is the portfolio HTTP server.
type Server struct {
	cfg         config.ServerConfig
	portfolio   *content.Portfolio
	chat        *chat.Service
	relay       contact.Relay
	toName      string
	highlighter nav.Highlighter
	salt        string
	engine      *gin.Engine
}

// New builds the router. gin's mode must be set by the caller beforehand.
func New(opts Options) (*Server, error) {
	if opts.Portfolio == nil || opts.Chat == nil || opts.Relay == nil {
		return nil, errors.New("server: portfolio, chat and relay are required")
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:         opts.Config,
		portfolio:   opts.Portfolio,
		chat:        opts.Chat,
		relay:       opts.Relay,
		toName:      opts.ToName,
		highlighter: nav.NewHighlighter(opts.Portfolio.SectionIDs()),
		salt:        newSalt(),
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestID(), requestLogger(s.salt))
	r.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, errors.Wrap(err, "static assets")
	}
	r.StaticFS("/static", http.FS(static))

	r.GET("/", s.handleIndex)
	r.GET("/skills/:index", s.handleSkills)
	r.GET("/contact/form", s.handleContactForm)
	r.POST("/contact", s.handleContact)
	r.POST("/api/chat", s.handleChat)
	r.GET("/healthz", s.handleHealth)

	s.engine = r
	return s, nil
}

// Router returns the HTTP handler.
func (s *Server) Router() http.Handler {
	return s.engine
}

var templateFuncs = template.FuncMap{
	// barDelay staggers skill bar animations.
	"barDelay": func(i int) int { return i * 80 },
	"add":      func(a, b int) int { return a + b },
	"external": func(href string) bool {
		return strings.HasPrefix(href, "http")
	},
	"href": authoredURL,
}

// authoredURL passes through links from the content document whose scheme is
// known to be safe. html/template would otherwise rewrite tel: links.
func authoredURL(href string) template.URL {
	if strings.HasPrefix(href, "//") {
		return template.URL("#")
	}
	for _, p := range []string{"https://", "http://", "mailto:", "tel:", "#", "/"} {
		if strings.HasPrefix(href, p) {
			return template.URL(href)
		}
	}
	return template.URL("#")
}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parsing templates")
	}
	return tmpl, nil
}

// Run serves on the configured port until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", ":"+strconv.Itoa(s.cfg.Port))
	if err != nil {
		return errors.Wrapf(err, "listening on port %d", s.cfg.Port)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("portfolio server listening", "addr", ln.Addr().String(), "chat_mode", s.chat.Mode())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "http server")
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		timeout := s.cfg.ShutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		slog.Info("shutting down portfolio server")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
