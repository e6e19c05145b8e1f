// cmd/garden/main.go
//
// Entry point for the garden advice program.
//
// Flow:
// 1. Load .garden/config.yaml from the working directory, if any
// 2. Open the session logbook when enabled
// 3. Run the line prompts, or the list picker when interface: picker

package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kingrea/garden-advice/internal/config"
	"github.com/kingrea/garden-advice/internal/logbook"
	"github.com/kingrea/garden-advice/internal/session"
	"github.com/kingrea/garden-advice/internal/tui"
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	var lb *logbook.Logbook
	if path := cfg.LogbookPath(); path != "" {
		lb, err = logbook.New(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening logbook: %v\n", err)
			os.Exit(1)
		}
	}

	switch cfg.Interface() {
	case config.InterfacePicker:
		runPicker(lb)
	default:
		runPrompt(lb)
	}
}

func runPrompt(lb *logbook.Logbook) {
	r := session.New(os.Stdin, os.Stdout, lb)
	if _, err := r.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		os.Exit(1)
	}
}

// runPicker shows the list picker on the alternate screen, then prints the
// chosen report to the normal screen so it stays visible after exit.
func runPicker(lb *logbook.Logbook) {
	model := tui.New(lb)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		lb.Error("picker: %v", err)
		fmt.Fprintf(os.Stderr, "Error running picker: %v\n", err)
		os.Exit(1)
	}
	if report, ok := model.Report(); ok {
		fmt.Print(report.String())
	}
}
