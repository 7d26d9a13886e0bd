package cmd

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Tarun-surendra/portfolio/internal/chat"
	"github.com/Tarun-surendra/portfolio/internal/content"
)

var askLocal bool

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Chat with the portfolio assistant from the terminal",
	Long: `Ask sends one question to the assistant and prints the reply. Without a
question it starts an interactive session; type "exit" to leave.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		p, err := content.Load(cfg.ContentFile)
		if err != nil {
			return errors.Wrap(err, "loading content")
		}

		chatCfg := cfg.Chat
		if askLocal {
			chatCfg.APIKey = ""
		}
		responder, err := chat.NewResponder(chatCfg, p.Chat)
		if err != nil {
			return errors.Wrap(err, "creating chat responder")
		}
		w := chat.NewWidget(chat.NewService(responder, p.Chat.Apology), p.Chat)

		out := cmd.OutOrStdout()
		if len(args) > 0 {
			reply, err := w.Send(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			printTurn(out, reply)
			return nil
		}
		return repl(cmd.Context(), w, cmd.InOrStdin(), out)
	},
}

func init() {
	askCmd.Flags().BoolVar(&askLocal, "local", false, "use the local keyword replies even when an API key is set")
	rootCmd.AddCommand(askCmd)
}

// repl reads questions line by line until EOF or "exit".
func repl(ctx context.Context, w *chat.Widget, in io.Reader, out io.Writer) error {
	for _, t := range w.Turns() {
		printTurn(out, t)
	}
	if s := w.Suggestions(); len(s) > 0 {
		printHint(out, "try: %s", strings.Join(s, " · "))
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		reply, err := w.Send(ctx, line)
		if err != nil {
			return err
		}
		printTurn(out, reply)
	}
	return errors.Wrap(scanner.Err(), "reading input")
}
