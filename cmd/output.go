package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/Tarun-surendra/portfolio/internal/chat"
)

var (
	amber = lipgloss.Color("#c8873a")
	muted = lipgloss.Color("#94a3b8")

	assistantStyle = lipgloss.NewStyle().Foreground(amber).Bold(true)
	userStyle      = lipgloss.NewStyle().Bold(true)
	hintStyle      = lipgloss.NewStyle().Foreground(muted).Italic(true)
)

func printTurn(w io.Writer, t chat.Turn) {
	if t.Role == chat.RoleUser {
		fmt.Fprintf(w, "%s %s\n", userStyle.Render("you:"), t.Content)
		return
	}
	fmt.Fprintf(w, "%s %s\n", assistantStyle.Render("assistant:"), t.Content)
}

func printHint(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, hintStyle.Render(fmt.Sprintf(format, args...)))
}
