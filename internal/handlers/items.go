package handlers

import (
	"VaultKeeper/internal/service"
	"net/http"

	"go.uber.org/zap"
)

// ItemHandler обрабатывает записи хранилища.
type ItemHandler struct {
	Keeper Keeper
	Logger *zap.SugaredLogger
}

// NewItemHandler создаёт хендлер items
func NewItemHandler(keeper Keeper, logger *zap.SugaredLogger) *ItemHandler {
	return &ItemHandler{Keeper: keeper, Logger: logger}
}

// List GET /api/items
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Keeper.ListItems(r.Context())
	if err != nil {
		writeError(w, h.Logger, "ListItems", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Get GET /api/items/{pos}
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	pos, ok := positionParam(w, r)
	if !ok {
		return
	}
	it, err := h.Keeper.GetItem(r.Context(), pos)
	if err != nil {
		writeError(w, h.Logger, "GetItem", err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

// Create POST /api/items. Вариант выбирается полем type.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.ItemInput
	if !decodeBody(w, r, h.Logger, "CreateItem", &in) {
		return
	}
	msg, err := h.Keeper.CreateItem(r.Context(), in)
	if err != nil {
		writeError(w, h.Logger, "CreateItem", err)
		return
	}
	writeResult(w, msg, http.StatusCreated)
}

// Edit PUT /api/items/{pos}
func (h *ItemHandler) Edit(w http.ResponseWriter, r *http.Request) {
	pos, ok := positionParam(w, r)
	if !ok {
		return
	}
	var in service.ItemInput
	if !decodeBody(w, r, h.Logger, "EditItem", &in) {
		return
	}
	msg, err := h.Keeper.EditItem(r.Context(), pos, in)
	if err != nil {
		writeError(w, h.Logger, "EditItem", err)
		return
	}
	writeResult(w, msg, http.StatusNoContent)
}

// Delete DELETE /api/items/{pos}
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	pos, ok := positionParam(w, r)
	if !ok {
		return
	}
	if err := h.Keeper.DeleteItem(r.Context(), pos); err != nil {
		writeError(w, h.Logger, "DeleteItem", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
