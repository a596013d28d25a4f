package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/privault/privault/internal/logger"
	"github.com/privault/privault/internal/vault"
	"github.com/privault/privault/models"
)

type createNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type createFileRequest struct {
	Title        string `json:"title"`
	Name         string `json:"name"`
	MimeType     string `json:"mimeType"`
	LastModified int64  `json:"lastModified"`
	Data         []byte `json:"data"`
}

type listedItemResponse struct {
	models.VaultItem
	Revealed bool       `json:"revealed"`
	Note     string     `json:"note,omitempty"`
	File     *fileReply `json:"file,omitempty"`
}

type fileReply struct {
	Metadata models.FileMetadata `json:"metadata"`
}

type previewResponse struct {
	DataURI string `json:"dataUri"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	listed, err := h.lifecycle.List(r.Context())
	if err != nil {
		h.writeError(w, r, "*Handler.list", err)
		return
	}

	out := make([]listedItemResponse, len(listed))
	for i, entry := range listed {
		out[i] = toListedItemResponse(entry)
	}
	h.writeJSON(w, r, http.StatusOK, out)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	var req createNoteRequest
	if !h.readJSON(w, r, "*Handler.createNote", &req) {
		return
	}

	item, err := h.lifecycle.CreateNote(r.Context(), req.Title, req.Content)
	if err != nil {
		h.writeError(w, r, "*Handler.createNote", err)
		return
	}
	h.writeJSON(w, r, http.StatusCreated, item)
}

func (h *Handler) createFile(w http.ResponseWriter, r *http.Request) {
	var req createFileRequest
	if !h.readJSON(w, r, "*Handler.createFile", &req) {
		return
	}

	meta := models.FileMetadata{
		Name:         req.Name,
		MimeType:     req.MimeType,
		SizeBytes:    int64(len(req.Data)),
		LastModified: req.LastModified,
	}

	item, err := h.lifecycle.CreateFile(r.Context(), req.Title, req.Data, meta)
	if err != nil {
		h.writeError(w, r, "*Handler.createFile", err)
		return
	}
	h.writeJSON(w, r, http.StatusCreated, item)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	var req createNoteRequest
	if !h.readJSON(w, r, "*Handler.updateNote", &req) {
		return
	}

	item, err := h.lifecycle.UpdateNote(r.Context(), chi.URLParam(r, "id"), req.Title, req.Content)
	if err != nil {
		h.writeError(w, r, "*Handler.updateNote", err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, item)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.lifecycle.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, "*Handler.deleteItem", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) reveal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	view, err := h.lifecycle.Reveal(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "*Handler.reveal", err)
		return
	}

	reply := listedItemResponse{Revealed: true}
	reply.ID = id
	if view.Note != nil {
		reply.Note = view.Note.Text
	}
	if view.File != nil {
		reply.File = &fileReply{Metadata: view.File.Metadata}
	}
	h.writeJSON(w, r, http.StatusOK, reply)
}

func (h *Handler) conceal(w http.ResponseWriter, r *http.Request) {
	h.lifecycle.Conceal(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	export, err := h.lifecycle.ExportFile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "*Handler.export", err)
		return
	}

	w.Header().Set("Content-Type", export.MIME)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Name))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(export.Data); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.export").Msg("error writing export body")
	}
}

func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	uri, err := h.lifecycle.PreviewDataURI(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "*Handler.preview", err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, previewResponse{DataURI: uri})
}

func toListedItemResponse(entry vault.ListedItem) listedItemResponse {
	out := listedItemResponse{VaultItem: entry.Item}
	if entry.View == nil {
		return out
	}

	out.Revealed = true
	if entry.View.Note != nil {
		out.Note = entry.View.Note.Text
	}
	if entry.View.File != nil {
		out.File = &fileReply{Metadata: entry.View.File.Metadata}
	}
	return out
}

func (h *Handler) readJSON(w http.ResponseWriter, r *http.Request, fn string, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Str("func", fn).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeJSON").Msg("error encoding response body")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)
	logger.FromRequest(r).Err(err).Str("func", fn).Int("status", status).Msg("request failed")
	http.Error(w, err.Error(), status)
}
