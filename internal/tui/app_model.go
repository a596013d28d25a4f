package tui

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/privault/privault/internal/vault"
	"github.com/privault/privault/models"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenFormNote
	screenFormFile
)

type appModel struct {
	ctx           context.Context
	lifecycle     vault.ItemLifecycle
	currentScreen screen

	list     listModel
	detail   detailModel
	formNote formNoteModel
	formFile formFileModel

	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
}

func newAppModel(ctx context.Context, lifecycle vault.ItemLifecycle) appModel {
	return appModel{
		ctx:       ctx,
		lifecycle: lifecycle,
		list:      newListModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return m.cmdLoadList()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showConfirm {
			switch {
			case key.Matches(msg, keys.yes):
				m.showConfirm = false
				id := m.pendingDelete
				m.pendingDelete = ""
				return m, m.cmdDelete(id)
			case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}

		switch m.currentScreen {
		case screenList:
			return m.updateList(msg)
		case screenDetail:
			return m.updateDetail(msg)
		case screenFormNote:
			return m.updateFormNote(msg)
		case screenFormFile:
			return m.updateFormFile(msg)
		}

	case listLoadedMsg:
		m.list.loading = false
		m.list.lastErr = msg.err
		if msg.err == nil {
			m.list.items = msg.items
			if m.list.idx >= len(msg.items) {
				m.list.idx = len(msg.items) - 1
			}
			if m.list.idx < 0 {
				m.list.idx = 0
			}
		}
		return m, nil

	case revealDoneMsg:
		if msg.err != nil {
			m.list.lastErr = msg.err
			return m, nil
		}
		if entry, ok := m.list.current(); ok && entry.Item.ID == msg.id {
			m.detail = detailModel{item: entry.Item, view: msg.view}
			m.currentScreen = screenDetail
		}
		return m, m.cmdLoadList()

	case itemSavedMsg:
		if msg.err != nil {
			if m.currentScreen == screenFormNote || m.currentScreen == screenFormFile {
				m.list.lastErr = msg.err
			}
			m.currentScreen = screenList
			return m, m.cmdLoadList()
		}
		m.list.lastErr = nil
		m.list.status = "saved"
		m.currentScreen = screenList
		return m, m.cmdLoadList()

	case itemDeletedMsg:
		m.list.lastErr = msg.err
		if msg.err == nil {
			m.list.status = "deleted"
		}
		m.currentScreen = screenList
		return m, m.cmdLoadList()

	case exportDoneMsg:
		if msg.err != nil {
			m.detail.status = errorStyle.Render("Error: " + msg.err.Error())
		} else {
			m.detail.status = "saved to " + msg.path
		}
		return m, nil

	case copiedMsg:
		m.detail.status = "copied to clipboard"
		return m, nil
	}

	return m, nil
}

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(msg, keys.down):
		if m.list.idx < len(m.list.items)-1 {
			m.list.idx++
		}
	case key.Matches(msg, keys.enter):
		if entry, ok := m.list.current(); ok {
			m.list.status = ""
			return m, m.cmdReveal(entry.Item.ID)
		}
	case key.Matches(msg, keys.newNote):
		m.formNote = newFormNoteModel("", "", "")
		m.currentScreen = screenFormNote
	case key.Matches(msg, keys.newFile):
		m.formFile = newFormFileModel()
		m.currentScreen = screenFormFile
	case key.Matches(msg, keys.delete):
		if entry, ok := m.list.current(); ok {
			m.showConfirm = true
			m.confirm = confirmModel{message: entry.Item.Title}
			m.pendingDelete = entry.Item.ID
		}
	}
	return m, nil
}

func (m appModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.lifecycle.Conceal(m.detail.item.ID)
		m.currentScreen = screenList
		return m, m.cmdLoadList()
	case key.Matches(msg, keys.edit):
		if m.detail.view.Note != nil {
			m.formNote = newFormNoteModel(m.detail.item.ID, m.detail.item.Title, m.detail.view.Note.Text)
			m.currentScreen = screenFormNote
		}
	case key.Matches(msg, keys.copy):
		if m.detail.view.Note != nil {
			return m, cmdCopy(m.detail.view.Note.Text)
		}
	case key.Matches(msg, keys.save):
		if m.detail.view.File != nil {
			return m, m.cmdExport(m.detail.item.ID)
		}
	case key.Matches(msg, keys.delete):
		m.showConfirm = true
		m.confirm = confirmModel{message: m.detail.item.Title}
		m.pendingDelete = m.detail.item.ID
	}
	return m, nil
}

func (m appModel) updateFormNote(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.currentScreen = screenList
		return m, nil
	case key.Matches(msg, keys.tab):
		m.formNote.inputs[m.formNote.focus].Blur()
		m.formNote.focus = (m.formNote.focus + 1) % len(m.formNote.inputs)
		m.formNote.inputs[m.formNote.focus].Focus()
		return m, nil
	case key.Matches(msg, keys.enter):
		return m, m.cmdSaveNote(m.formNote.itemID, m.formNote.title(), m.formNote.content())
	}

	var cmd tea.Cmd
	m.formNote.inputs[m.formNote.focus], cmd = m.formNote.inputs[m.formNote.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateFormFile(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.currentScreen = screenList
		return m, nil
	case key.Matches(msg, keys.tab):
		m.formFile.inputs[m.formFile.focus].Blur()
		m.formFile.focus = (m.formFile.focus + 1) % len(m.formFile.inputs)
		m.formFile.inputs[m.formFile.focus].Focus()
		return m, nil
	case key.Matches(msg, keys.enter):
		return m, m.cmdSaveFile(m.formFile.title(), m.formFile.path())
	}

	var cmd tea.Cmd
	m.formFile.inputs[m.formFile.focus], cmd = m.formFile.inputs[m.formFile.focus].Update(msg)
	return m, cmd
}

func (m appModel) View() string {
	var out string

	switch m.currentScreen {
	case screenDetail:
		out = m.detail.View()
	case screenFormNote:
		out = m.formNote.View()
	case screenFormFile:
		out = m.formFile.View()
	default:
		out = m.list.View()
	}

	if m.showConfirm {
		out += "\n\n" + m.confirm.View()
	}
	return appStyle.Render(out)
}

func (m appModel) cmdLoadList() tea.Cmd {
	return func() tea.Msg {
		items, err := m.lifecycle.List(m.ctx)
		return listLoadedMsg{items: items, err: err}
	}
}

func (m appModel) cmdReveal(id string) tea.Cmd {
	return func() tea.Msg {
		view, err := m.lifecycle.Reveal(m.ctx, id)
		return revealDoneMsg{id: id, view: view, err: err}
	}
}

func (m appModel) cmdSaveNote(id, title, content string) tea.Cmd {
	return func() tea.Msg {
		var err error
		if id == "" {
			_, err = m.lifecycle.CreateNote(m.ctx, title, content)
		} else {
			_, err = m.lifecycle.UpdateNote(m.ctx, id, title, content)
		}
		return itemSavedMsg{err: err}
	}
}

func (m appModel) cmdSaveFile(title, path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return itemSavedMsg{err: fmt.Errorf("read file: %w", err)}
		}
		info, err := os.Stat(path)
		if err != nil {
			return itemSavedMsg{err: fmt.Errorf("stat file: %w", err)}
		}

		mimeType := mime.TypeByExtension(filepath.Ext(path))
		if mimeType == "" {
			mimeType = http.DetectContentType(data)
		}

		meta := models.FileMetadata{
			Name:         filepath.Base(path),
			MimeType:     mimeType,
			SizeBytes:    info.Size(),
			LastModified: info.ModTime().UnixMilli(),
		}

		_, err = m.lifecycle.CreateFile(m.ctx, title, data, meta)
		return itemSavedMsg{err: err}
	}
}

func (m appModel) cmdDelete(id string) tea.Cmd {
	return func() tea.Msg {
		return itemDeletedMsg{err: m.lifecycle.Delete(m.ctx, id)}
	}
}

func (m appModel) cmdExport(id string) tea.Cmd {
	return func() tea.Msg {
		export, err := m.lifecycle.ExportFile(m.ctx, id)
		if err != nil {
			return exportDoneMsg{err: err}
		}

		path := export.Name
		if path == "" {
			path = id
		}
		if err := os.WriteFile(path, export.Data, 0o600); err != nil {
			return exportDoneMsg{err: fmt.Errorf("write file: %w", err)}
		}
		return exportDoneMsg{path: path}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return exportDoneMsg{err: fmt.Errorf("clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}
