package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type formFileModel struct {
	inputs []textinput.Model
	focus  int
}

func newFormFileModel() formFileModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[0].Focus()

	return formFileModel{inputs: inputs}
}

func (m formFileModel) title() string { return m.inputs[0].Value() }
func (m formFileModel) path() string  { return m.inputs[1].Value() }

func (m formFileModel) View() string {
	out := titleStyle.Render("New file") + "\n\n"
	out += "Title: [" + m.inputs[0].View() + "]\n"
	out += "Path:  [" + m.inputs[1].View() + "]\n\n"
	out += helpStyle.Render("esc cancel  tab next field  enter encrypt & store")
	return out
}
