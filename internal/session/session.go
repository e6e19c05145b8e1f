// internal/session/session.go
//
// The console session: greet, ask for the season, ask for the plant type,
// then print the advice report.

package session

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/kingrea/garden-advice/internal/advice"
	"github.com/kingrea/garden-advice/internal/logbook"
	"github.com/kingrea/garden-advice/internal/prompt"
)

const Welcome = "Welcome to the Garden Advice Program!"

// Runner drives one prompt-mode session.
type Runner struct {
	collector *prompt.Collector
	logbook   *logbook.Logbook
}

// New creates a Runner reading answers from in and writing to out.
// lb may be nil.
func New(in io.Reader, out io.Writer, lb *logbook.Logbook) *Runner {
	c := prompt.New(in, out)
	c.OnReject = func(question, answer string) {
		lb.Rejected(strings.TrimSpace(question), answer)
	}
	return &Runner{collector: c, logbook: lb}
}

// Run executes the session and returns the printed report.
func (r *Runner) Run(ctx context.Context) (advice.Report, error) {
	r.logbook.Opened("prompt")
	r.collector.Println(Welcome)

	season, err := r.ask(ctx, advice.SeasonNames(), "Enter the current season")
	if err != nil {
		return advice.Report{}, err
	}
	plant, err := r.ask(ctx, advice.PlantTypeNames(), "Enter the type of plant")
	if err != nil {
		return advice.Report{}, err
	}

	report := advice.NewReport(advice.Season(season), advice.PlantType(plant))
	r.collector.Print(report.String())
	r.logbook.Advised(season, plant)
	return report, nil
}

func (r *Runner) ask(ctx context.Context, options []string, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		r.logbook.Warn("Session cancelled before %q: %v", label, err)
		return "", fmt.Errorf("session: %w", err)
	}
	question := fmt.Sprintf("%s (%s): ", label, strings.Join(options, ", "))
	answer, err := r.collector.Ask(question, options)
	if err != nil {
		r.logbook.Error("%s: %v", label, err)
		return "", fmt.Errorf("session: %w", err)
	}
	r.logbook.Answered(label, answer)
	return answer, nil
}
