package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/at-ishikawa/acreage/internal/practice"
)

// PracticeQuizCLI asks one conversion problem per session on a line based terminal
type PracticeQuizCLI struct {
	*InteractiveQuizCLI
	widget *practice.Widget
	// Counters are read by the caller of Run while an interrupted session may still be running.
	solved  atomic.Int64
	skipped atomic.Int64
}

// NewPracticeQuizCLI creates a quiz over the problems of the widget
func NewPracticeQuizCLI(widget *practice.Widget, stdin io.Reader, stdout io.Writer) *PracticeQuizCLI {
	return &PracticeQuizCLI{
		InteractiveQuizCLI: newInteractiveQuizCLI(stdin, stdout),
		widget:             widget,
	}
}

// Solved returns the number of problems answered correctly
func (r *PracticeQuizCLI) Solved() int {
	return int(r.solved.Load())
}

// Skipped returns the number of skipped problems
func (r *PracticeQuizCLI) Skipped() int {
	return int(r.skipped.Load())
}

func (r *PracticeQuizCLI) Session(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errEnd
	}

	r.widget.NewProblem()
	if err := r.widget.ShowSteps(); err != nil {
		return fmt.Errorf("widget.ShowSteps() > %w", err)
	}
	step, err := r.widget.Step()
	if err != nil {
		return fmt.Errorf("widget.Step() > %w", err)
	}
	problem := r.widget.Problem()

	_, _ = r.bold.Fprintf(r.stdoutWriter, "%s\n", problem.Question())
	r.printf("  %s\n", step.Main)
	r.printf("  %s\n", r.italic.Sprint(step.Formula))

	for !r.widget.Answer().IsRevealed() {
		r.printf("Answer in %s (or 'skip', 'quit'): ", strings.ToLower(problem.Direction.TargetUnit()))
		line, err := r.readLine()
		if err != nil {
			return err
		}

		input := strings.TrimSpace(line)
		switch strings.ToLower(input) {
		case "quit", "q", "exit":
			return errEnd
		case "skip", "s":
			r.widget.Skip()
			continue
		}

		r.widget.TypeAnswer(practice.Type("", input))
		if !r.widget.Check() {
			_, _ = r.warning.Fprintf(r.stdoutWriter, "❌ %q is not correct. Try again.\n", r.widget.Answer().UserAnswer())
		}
	}

	r.printf("  = %s %s\n", renderNumber(step.Answer), strings.ToLower(problem.Direction.TargetUnit()))
	if praise := r.widget.Praise(); praise != "" {
		r.solved.Add(1)
		_, _ = r.correct.Fprintf(r.stdoutWriter, "✅ %s\n", praise)
	} else {
		r.skipped.Add(1)
		r.println("Skipped. The answer is filled in above.")
	}
	r.println()
	return nil
}
