package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/acreage/internal/conversion"
	"github.com/at-ishikawa/acreage/internal/practice"
)

func runesMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func applyMsgs(t *testing.T, m WidgetModel, msgs ...tea.Msg) WidgetModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(WidgetModel)
		require.True(t, ok)
	}
	return m
}

func TestWidgetModel_CheckAnswer(t *testing.T) {
	widget := newTestWidget(t, 0, 3)
	m := NewWidgetModel(widget)
	assert.Contains(t, m.View(), "87120")
	assert.Contains(t, m.View(), "Convert Square Feet to Acres")
	assert.NotContains(t, m.View(), "Steps to calculate the conversion:")

	m = applyMsgs(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, widget.StepsShown())
	assert.Equal(t, fieldAnswer, m.focus)
	view := m.View()
	assert.Contains(t, view, "Steps to calculate the conversion:")
	assert.Contains(t, view, "Divide square feet by 43,560")
	assert.Contains(t, view, "87,120 ÷ 43,560")
	assert.Contains(t, view, "Enter Answer")

	m = applyMsgs(t, m, runesMsg("3"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, widget.Answer().IsError())

	m = applyMsgs(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.False(t, widget.Answer().IsError(), "editing clears the error")

	m = applyMsgs(t, m, runesMsg("2"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, widget.Answer().IsRevealed())
	view = m.View()
	assert.Contains(t, view, "= 2")
	assert.Contains(t, view, "Great Job!")
}

func TestWidgetModel_Skip(t *testing.T) {
	widget := newTestWidget(t, 1, 4)
	m := applyMsgs(t, NewWidgetModel(widget),
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyCtrlS},
	)

	assert.True(t, widget.Answer().StepSkipped())
	assert.Equal(t, "108900", widget.Answer().UserAnswer())
	view := m.View()
	assert.Contains(t, view, "= 108900")
	assert.NotContains(t, view, "Great Job!")

	m = applyMsgs(t, m, runesMsg("1"))
	assert.Equal(t, "108900", widget.Answer().UserAnswer(), "a revealed answer can not be edited")
}

func TestWidgetModel_EditValue(t *testing.T) {
	widget := newTestWidget(t, 0, 3)
	m := applyMsgs(t, NewWidgetModel(widget), tea.KeyMsg{Type: tea.KeyCtrlU})
	assert.Equal(t, "", widget.Problem().Value)
	assert.Contains(t, m.View(), "Enter square feet")

	m = applyMsgs(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, widget.StepsShown())
	assert.Contains(t, m.View(), "Enter square feet first")

	m = applyMsgs(t, m, runesMsg("1"), runesMsg("x"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "1", widget.Problem().Value)
	require.True(t, widget.StepsShown())
	assert.Contains(t, m.View(), "1 ÷ 43,560")

	m = applyMsgs(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Contains(t, m.View(), "= 2.2957 × 10⁻⁵")

	m = applyMsgs(t, m, tea.KeyMsg{Type: tea.KeyTab}, runesMsg("2.345"))
	assert.Equal(t, "12.34", widget.Problem().Value)
	assert.False(t, widget.StepsShown(), "a new value hides the steps")
	assert.False(t, widget.Answer().IsRevealed())
}

func TestWidgetModel_ChangeUnitAndNewProblem(t *testing.T) {
	widget := newTestWidget(t, 0, 3)
	m := applyMsgs(t, NewWidgetModel(widget),
		tea.KeyMsg{Type: tea.KeyEnter},
		runesMsg("5"),
		tea.KeyMsg{Type: tea.KeyCtrlT},
	)
	assert.Equal(t, practice.ProblemState{Direction: conversion.DirectionAcresToSqft, Value: "87120"}, widget.Problem())
	assert.Equal(t, "", widget.Answer().UserAnswer())
	assert.False(t, widget.StepsShown())
	assert.Equal(t, fieldValue, m.focus)
	assert.Contains(t, m.View(), "Convert Acres to Square Feet")

	m = applyMsgs(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Equal(t, practice.ProblemState{Direction: conversion.DirectionSqftToAcres, Value: "87120"}, widget.Problem())
	assert.False(t, widget.StepsShown())
	assert.Equal(t, fieldValue, m.focus)
}

func TestWidgetModel_Quit(t *testing.T) {
	m := NewWidgetModel(newTestWidget(t, 0, 3))
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
	}
}

func TestRenderNumber(t *testing.T) {
	assert.Equal(t, "2", renderNumber(conversion.SqftToAcres(87120)))
	assert.Equal(t, "108900", renderNumber(conversion.AcresToSqft(2.5)))
	assert.Equal(t, "2.2957 × 10⁻⁵", renderNumber(conversion.SqftToAcres(1)))
}
