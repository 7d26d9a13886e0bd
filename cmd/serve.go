package cmd

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Tarun-surendra/portfolio/internal/chat"
	"github.com/Tarun-surendra/portfolio/internal/contact"
	"github.com/Tarun-surendra/portfolio/internal/content"
	"github.com/Tarun-surendra/portfolio/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}
		gin.SetMode(cfg.Server.Mode)

		p, err := content.Load(cfg.ContentFile)
		if err != nil {
			return errors.Wrap(err, "loading content")
		}

		responder, err := chat.NewResponder(cfg.Chat, p.Chat)
		if err != nil {
			return errors.Wrap(err, "creating chat responder")
		}
		if !cfg.HostedChat() {
			slog.Warn("no chat API key configured, using local replies")
		}

		relay, err := contact.NewRelay(cfg.Contact)
		if err != nil {
			return errors.Wrap(err, "creating contact relay")
		}

		srv, err := server.New(server.Options{
			Config:    cfg.Server,
			Portfolio: p,
			Chat:      chat.NewService(responder, p.Chat.Apology),
			Relay:     relay,
			ToName:    cfg.Contact.ToName,
		})
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "listen port (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
