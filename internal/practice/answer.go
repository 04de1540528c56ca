package practice

import (
	"math"
	"strconv"

	"github.com/at-ishikawa/acreage/internal/conversion"
)

// Phase is where the answer of the current problem is.
// It is one of AwaitingInput, Checked or Revealed.
type Phase interface {
	phase()
}

// AwaitingInput waits for the learner to check or skip.
type AwaitingInput struct{}

// Checked is the outcome of the last check.
// A correct check moves on to Revealed, so only incorrect checks stay here
// until the answer is edited.
type Checked struct {
	Correct bool
}

// Revealed shows the answer. Nothing but a new problem leaves this phase.
type Revealed struct {
	Skipped bool
}

func (AwaitingInput) phase() {}
func (Checked) phase()       {}
func (Revealed) phase()      {}

// AnswerState is the learner's answer to the current problem.
type AnswerState struct {
	userAnswer string
	phase      Phase
}

func NewAnswerState() AnswerState {
	return AnswerState{phase: AwaitingInput{}}
}

func (a AnswerState) UserAnswer() string {
	return a.userAnswer
}

func (a AnswerState) Phase() Phase {
	if a.phase == nil {
		return AwaitingInput{}
	}
	return a.phase
}

// IsError reports whether the last check failed and the answer was not edited since.
func (a AnswerState) IsError() bool {
	checked, ok := a.phase.(Checked)
	return ok && !checked.Correct
}

func (a AnswerState) IsRevealed() bool {
	_, ok := a.phase.(Revealed)
	return ok
}

// StepCompleted is true once the step was answered or skipped.
func (a AnswerState) StepCompleted() bool {
	return a.IsRevealed()
}

func (a AnswerState) StepSkipped() bool {
	revealed, ok := a.phase.(Revealed)
	return ok && revealed.Skipped
}

// Edit replaces the answer when the sanitizer accepts it and clears a
// previous error. It returns false when the edit was ignored.
func (a *AnswerState) Edit(proposed string) bool {
	if a.IsRevealed() || !Accepts(proposed) {
		return false
	}
	a.userAnswer = proposed
	a.phase = AwaitingInput{}
	return true
}

// Check compares the answer with the correct one.
func (a *AnswerState) Check(correct conversion.Number, tolerance float64) bool {
	if a.IsRevealed() {
		return false
	}
	answer, err := strconv.ParseFloat(a.userAnswer, 64)
	if err != nil || math.Abs(answer-correct.Float()) >= tolerance {
		a.phase = Checked{Correct: false}
		return false
	}
	a.phase = Revealed{Skipped: false}
	return true
}

// Skip fills in the correct answer without checking.
func (a *AnswerState) Skip(correct conversion.Number) {
	if a.IsRevealed() {
		return
	}
	a.userAnswer = correct.String()
	a.phase = Revealed{Skipped: true}
}
