package handlers

import (
	"VaultKeeper/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// KeyHandler обрабатывает избранные ключи.
type KeyHandler struct {
	Keeper Keeper
	Logger *zap.SugaredLogger
}

// NewKeyHandler создаёт хендлер ключей
func NewKeyHandler(keeper Keeper, logger *zap.SugaredLogger) *KeyHandler {
	return &KeyHandler{Keeper: keeper, Logger: logger}
}

// List GET /api/keys
func (h *KeyHandler) List(w http.ResponseWriter, r *http.Request) {
	keys, err := h.Keeper.ListKeys(r.Context())
	if err != nil {
		writeError(w, h.Logger, "ListKeys", err)
		return
	}
	writeJSON(w, http.StatusOK, keys)
}

// Get GET /api/keys/{pos}
func (h *KeyHandler) Get(w http.ResponseWriter, r *http.Request) {
	pos, ok := positionParam(w, r)
	if !ok {
		return
	}
	k, err := h.Keeper.GetKey(r.Context(), pos)
	if err != nil {
		writeError(w, h.Logger, "GetKey", err)
		return
	}
	writeJSON(w, http.StatusOK, k)
}

// Create POST /api/keys
func (h *KeyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.KeyInput
	if !decodeBody(w, r, h.Logger, "CreateKey", &in) {
		return
	}
	msg, err := h.Keeper.CreateKey(r.Context(), in)
	if err != nil {
		writeError(w, h.Logger, "CreateKey", err)
		return
	}
	writeResult(w, msg, http.StatusCreated)
}

// Edit PUT /api/keys/{pos}
func (h *KeyHandler) Edit(w http.ResponseWriter, r *http.Request) {
	pos, ok := positionParam(w, r)
	if !ok {
		return
	}
	var in service.KeyInput
	if !decodeBody(w, r, h.Logger, "EditKey", &in) {
		return
	}
	msg, err := h.Keeper.EditKey(r.Context(), pos, in)
	if err != nil {
		writeError(w, h.Logger, "EditKey", err)
		return
	}
	writeResult(w, msg, http.StatusNoContent)
}

// Delete DELETE /api/keys/{pos}
func (h *KeyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	pos, ok := positionParam(w, r)
	if !ok {
		return
	}
	msg, err := h.Keeper.DeleteKey(r.Context(), pos)
	if err != nil {
		writeError(w, h.Logger, "DeleteKey", err)
		return
	}
	writeResult(w, msg, http.StatusNoContent)
}

// SecretResponse — раскрытое значение ключа.
type SecretResponse struct {
	Name   string `json:"name"`
	Secret string `json:"secret"`
}

// Secret GET /api/keys/secret/{name}
func (h *KeyHandler) Secret(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	s, err := h.Keeper.KeySecret(r.Context(), name)
	if err != nil {
		writeError(w, h.Logger, "KeySecret", err)
		return
	}
	writeJSON(w, http.StatusOK, SecretResponse{Name: name, Secret: s})
}
