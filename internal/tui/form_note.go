package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type formNoteModel struct {
	inputs  []textinput.Model
	focus   int
	editing bool
	itemID  string
}

func newFormNoteModel(id, title, content string) formNoteModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[0].Focus()

	m := formNoteModel{inputs: inputs}
	if id == "" {
		return m
	}

	m.editing = true
	m.itemID = id
	m.inputs[0].SetValue(title)
	m.inputs[1].SetValue(content)
	return m
}

func (m formNoteModel) title() string   { return m.inputs[0].Value() }
func (m formNoteModel) content() string { return m.inputs[1].Value() }

func (m formNoteModel) View() string {
	header := "New note"
	if m.editing {
		header = "Editing: " + m.inputs[0].Value()
	}

	out := titleStyle.Render(header) + "\n\n"
	out += "Title:   [" + m.inputs[0].View() + "]\n"
	out += "Content: [" + m.inputs[1].View() + "]\n\n"
	out += helpStyle.Render("esc cancel  tab next field  enter save")
	return out
}
