// Package practice holds the view state of an acres / square feet practice
// widget: the problem, the learner's answer and whether the worked step is shown.
package practice

import (
	"fmt"

	"github.com/at-ishikawa/acreage/internal/conversion"
)

const praise = "Great Job!"

// Tolerances are the accepted errors of an answer, per answer unit.
type Tolerances struct {
	Acres      float64
	SquareFeet float64
}

func DefaultTolerances() Tolerances {
	return Tolerances{
		Acres:      conversion.DefaultAcresTolerance,
		SquareFeet: conversion.DefaultSquareFeetTolerance,
	}
}

// For returns the tolerance of answers to problems in the given direction.
func (t Tolerances) For(direction conversion.Direction) float64 {
	if direction == conversion.DirectionAcresToSqft {
		return t.SquareFeet
	}
	return t.Acres
}

// Widget is the whole state of a practice widget.
// Every change of the problem resets the answer and hides the step.
type Widget struct {
	generator  *Generator
	tolerances Tolerances

	problem    ProblemState
	answer     AnswerState
	stepsShown bool
}

// NewWidget creates a widget starting with a generated problem.
func NewWidget(generator *Generator, tolerances Tolerances) *Widget {
	w := &Widget{
		generator:  generator,
		tolerances: tolerances,
	}
	w.NewProblem()
	return w
}

func (w *Widget) Problem() ProblemState {
	return w.problem
}

func (w *Widget) Answer() AnswerState {
	return w.answer
}

func (w *Widget) StepsShown() bool {
	return w.stepsShown
}

// Step returns the worked step of the current problem.
func (w *Widget) Step() (conversion.Step, error) {
	v, err := ParseValue(w.problem.Value)
	if err != nil {
		return conversion.Step{}, fmt.Errorf("ParseValue(%q) > %w", w.problem.Value, err)
	}
	return conversion.NewStep(w.problem.Direction, v), nil
}

// Praise is the message shown after a correct answer that was not skipped.
func (w *Widget) Praise() string {
	if w.answer.IsRevealed() && !w.answer.StepSkipped() {
		return praise
	}
	return ""
}

// SetValue changes the value of the problem. Rejected keystrokes are ignored.
func (w *Widget) SetValue(proposed string) bool {
	if proposed == w.problem.Value || !Accepts(proposed) {
		return false
	}
	w.replace(ProblemState{
		Direction: w.problem.Direction,
		Value:     proposed,
	})
	return true
}

// ChangeUnit flips the direction and keeps the value.
func (w *Widget) ChangeUnit() {
	w.replace(ProblemState{
		Direction: w.problem.Direction.Toggle(),
		Value:     w.problem.Value,
	})
}

func (w *Widget) NewProblem() {
	if w.generator == nil {
		w.replace(ProblemState{Direction: conversion.DirectionSqftToAcres})
		return
	}
	w.replace(w.generator.Next())
}

// ShowSteps shows the worked step of the current value and starts a fresh answer.
func (w *Widget) ShowSteps() error {
	if _, err := w.Step(); err != nil {
		return err
	}
	w.stepsShown = true
	w.answer = NewAnswerState()
	return nil
}

// TypeAnswer edits the answer of a shown step.
func (w *Widget) TypeAnswer(proposed string) bool {
	if !w.stepsShown {
		return false
	}
	return w.answer.Edit(proposed)
}

// Check checks the answer of a shown step and reports whether it is correct.
func (w *Widget) Check() bool {
	if !w.stepsShown {
		return false
	}
	step, err := w.Step()
	if err != nil {
		return false
	}
	return w.answer.Check(step.Answer, w.tolerances.For(w.problem.Direction))
}

// Skip reveals the answer of a shown step.
func (w *Widget) Skip() {
	if !w.stepsShown {
		return
	}
	step, err := w.Step()
	if err != nil {
		return
	}
	w.answer.Skip(step.Answer)
}

func (w *Widget) replace(problem ProblemState) {
	w.problem = problem
	w.answer = NewAnswerState()
	w.stepsShown = false
}
