package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type field struct {
	label       string
	placeholder string
	secret      bool
}

// form is a column of labelled text inputs with tab focus cycling.
type form struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(fields ...field) form {
	f := form{
		labels: make([]string, len(fields)),
		inputs: make([]textinput.Model, len(fields)),
	}
	for i, fd := range fields {
		in := textinput.New()
		in.Placeholder = fd.placeholder
		in.CharLimit = 256
		in.Width = 40
		if fd.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		f.labels[i] = fd.label
		f.inputs[i] = in
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

func (f *form) value(i int) string {
	return f.inputs[i].Value()
}

func (f *form) next() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) prev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) view() string {
	width := 0
	for _, l := range f.labels {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-*s │ %s\n", width, "Campo", "Valor")
	b.WriteString(strings.Repeat("─", width+1))
	b.WriteString("┼")
	b.WriteString(strings.Repeat("─", 44))
	b.WriteString("\n")
	for i, l := range f.labels {
		fmt.Fprintf(&b, "%-*s │ [%s]\n", width, l, f.inputs[i].View())
	}
	return b.String()
}

// submitButton renders the action, with a busy marker while submitting.
func submitButton(label string, submitting bool) string {
	if submitting {
		return "\n[" + label + "...]\n"
	}
	return "\n[" + label + "]\n"
}

func errorLine(msg string) string {
	if msg == "" {
		return ""
	}
	return "\n" + errorStyle.Render("Error: ") + msg + "\n"
}
