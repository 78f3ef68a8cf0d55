package main

import (
	"fmt"
	"os"

	"github.com/UnendingLoop/minigrep/internal/appmode"
	"github.com/UnendingLoop/minigrep/internal/parser"
	"github.com/charmbracelet/lipgloss"
)

var errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

func main() {
	// сигналы окружения читаем один раз и передаем явно
	env := parser.EnvFromLookup(os.LookupEnv)

	cfg, err := parser.BuildConfig(os.Args, env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Problem parsing arguments: %s\n", errStyle.Render(err.Error()))
		os.Exit(1)
	}

	if err := appmode.RunSearch(cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}
