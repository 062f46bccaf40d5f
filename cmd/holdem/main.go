package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/holdemcore/internal/tui"
)

var CLI struct {
	URL   string `short:"u" default:"ws://localhost:8080/ws" help:"Server websocket URL"`
	Name  string `short:"n" required:"" help:"Name to play under"`
	Table string `short:"t" help:"Table to join (default: server's first table)"`
	Debug string `help:"Write debug logs to this file"`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("holdem"),
		kong.Description("Interactive terminal client for a holdemd server."))

	var logOut io.Writer = io.Discard
	if CLI.Debug != "" {
		f, err := os.OpenFile(CLI.Debug, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error opening debug log: %v\n", err)
			kctx.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.New(logOut)

	client, err := tui.Dial(CLI.URL, CLI.Name, CLI.Table)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		kctx.Exit(1)
	}
	defer client.Close()

	model := tui.NewModel(CLI.Name, client, client.Recv, logger)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		kctx.Exit(1)
	}
}
