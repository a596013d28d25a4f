package tui

import (
	"fmt"

	"github.com/privault/privault/internal/vault"
	"github.com/privault/privault/models"
)

type listModel struct {
	items   []vault.ListedItem
	idx     int
	loading bool
	status  string
	lastErr error
}

func newListModel() listModel {
	return listModel{loading: true}
}

func (m listModel) current() (vault.ListedItem, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return vault.ListedItem{}, false
	}
	return m.items[m.idx], true
}

func listIcon(kind models.Kind) string {
	switch kind {
	case models.KindNote:
		return "[N]"
	case models.KindFile:
		return "[F]"
	default:
		return "[?]"
	}
}

func (m listModel) View() string {
	out := titleStyle.Render("privault") + "\n\n"

	if m.loading {
		out += "Loading...\n"
	} else if len(m.items) == 0 {
		out += "Vault is empty\n"
	} else {
		for i, entry := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			revealed := ""
			if entry.View != nil {
				revealed = "  (revealed)"
			}
			out += fmt.Sprintf("%s%s %s%s\n", cursor, listIcon(entry.Item.Kind), entry.Item.Title, revealed)
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}
	if m.lastErr != nil {
		out += "\n" + errorStyle.Render("Error: "+m.lastErr.Error()) + "\n"
	}

	out += "\n" + helpStyle.Render("n new note  f new file  enter reveal  d delete  q quit")
	return out
}
