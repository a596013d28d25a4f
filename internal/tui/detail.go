package tui

import (
	"fmt"

	"github.com/privault/privault/internal/vault"
	"github.com/privault/privault/models"
)

type detailModel struct {
	item   models.VaultItem
	view   vault.View
	status string
}

func (m detailModel) View() string {
	out := titleStyle.Render(m.item.Title) + fmt.Sprintf("  [%s]\n\n", m.item.Kind)

	switch {
	case m.view.Note != nil:
		out += m.view.Note.Text + "\n\n"
		out += helpStyle.Render("e edit  c copy text  d delete  esc conceal & back")
	case m.view.File != nil:
		meta := m.view.File.Metadata
		out += fmt.Sprintf("Name:     %s\n", meta.Name)
		out += fmt.Sprintf("Type:     %s\n", meta.MimeType)
		out += fmt.Sprintf("Size:     %d bytes\n", meta.SizeBytes)
		out += "\n"
		out += helpStyle.Render("s save to disk  d delete  esc conceal & back")
	default:
		out += "Nothing revealed\n"
	}

	if m.status != "" {
		out += "\n\n" + m.status
	}
	return out
}
