package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/at-ishikawa/acreage/internal/practice"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#5750E3")).Bold(true)
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(56)
	stepsStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#5750E3")).Padding(0, 1)
	inputStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("250")).Padding(0, 1).Width(30)
	focusedStyle  = inputStyle.BorderForeground(lipgloss.Color("#5750E3"))
	errorStyle    = inputStyle.BorderForeground(lipgloss.Color("#EAB308"))
	unitStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#008545")).Bold(true)
	praiseStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#16A34A")).Bold(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	messageStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EAB308"))
	placeholderFg = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type field int

const (
	fieldValue field = iota
	fieldAnswer
)

// WidgetModel renders a practice widget as a bubbletea program.
type WidgetModel struct {
	widget  *practice.Widget
	focus   field
	message string
}

var _ tea.Model = WidgetModel{}

func NewWidgetModel(widget *practice.Widget) WidgetModel {
	return WidgetModel{widget: widget}
}

func (m WidgetModel) Init() tea.Cmd {
	return nil
}

func (m WidgetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.message = ""

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "shift+tab":
		if m.focus == fieldValue && m.answerEditable() {
			m.focus = fieldAnswer
		} else {
			m.focus = fieldValue
		}
	case "enter":
		m = m.submit()
	case "ctrl+s":
		m.widget.Skip()
	case "ctrl+n":
		m.widget.NewProblem()
		m.focus = fieldValue
	case "ctrl+t":
		m.widget.ChangeUnit()
		m.focus = fieldValue
	case "ctrl+u":
		m = m.edit(func(string) string { return "" })
	case "backspace":
		m = m.edit(func(s string) string {
			if s == "" {
				return s
			}
			runes := []rune(s)
			return string(runes[:len(runes)-1])
		})
	default:
		if keyMsg.Type == tea.KeyRunes {
			for _, r := range keyMsg.Runes {
				m = m.edit(func(s string) string { return s + string(r) })
			}
		}
	}
	return m, nil
}

func (m WidgetModel) answerEditable() bool {
	return m.widget.StepsShown() && !m.widget.Answer().IsRevealed()
}

func (m WidgetModel) submit() WidgetModel {
	if m.focus == fieldAnswer {
		m.widget.Check()
		return m
	}
	if err := m.widget.ShowSteps(); err != nil {
		m.message = fmt.Sprintf("Enter %s first", strings.ToLower(m.widget.Problem().Direction.SourceUnit()))
		return m
	}
	m.focus = fieldAnswer
	return m
}

// edit applies a keystroke to the focused field. Keystrokes the sanitizer
// rejects leave the field as it was.
func (m WidgetModel) edit(keystroke func(string) string) WidgetModel {
	if m.focus == fieldAnswer {
		m.widget.TypeAnswer(keystroke(m.widget.Answer().UserAnswer()))
		return m
	}
	m.widget.SetValue(keystroke(m.widget.Problem().Value))
	return m
}

func (m WidgetModel) View() string {
	problem := m.widget.Problem()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Acre Square Feet Conversion"))
	b.WriteString("\n\n")

	value := problem.Value
	if value == "" {
		value = placeholderFg.Render(problem.Direction.Placeholder())
	} else {
		value += " " + unitStyle.Render(problem.Direction.SourceUnit())
	}
	valueStyle := inputStyle
	if m.focus == fieldValue {
		valueStyle = focusedStyle
	}
	b.WriteString(valueStyle.Render(value))
	b.WriteString("\n")
	b.WriteString(problem.Direction.Title())
	b.WriteString("\n")

	if m.widget.StepsShown() {
		b.WriteString("\n")
		b.WriteString(m.stepsView())
		b.WriteString("\n")
	}
	if m.message != "" {
		b.WriteString(messageStyle.Render(m.message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter convert/check • ctrl+s skip • ctrl+t change unit • ctrl+n new problem • tab switch field • esc quit"))
	return panelStyle.Render(b.String())
}

func (m WidgetModel) stepsView() string {
	step, err := m.widget.Step()
	if err != nil {
		return ""
	}
	answer := m.widget.Answer()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Steps to calculate the conversion:"))
	b.WriteString("\n")
	b.WriteString(step.Main)
	b.WriteString("\n")
	b.WriteString(step.Formula)
	b.WriteString("\n")

	if answer.StepCompleted() {
		b.WriteString(answerStyle.Render("= " + renderNumber(step.Answer)))
		if praise := m.widget.Praise(); praise != "" {
			b.WriteString("\n")
			b.WriteString(praiseStyle.Render(praise))
		}
		return stepsStyle.Render(b.String())
	}

	text := answer.UserAnswer()
	if text == "" {
		text = placeholderFg.Render("Enter Answer")
	}
	style := inputStyle
	switch {
	case answer.IsError():
		style = errorStyle
	case m.focus == fieldAnswer:
		style = focusedStyle
	}
	b.WriteString(style.Render(text))
	return stepsStyle.Render(b.String())
}
