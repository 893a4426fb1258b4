package handlers

import (
	"VaultKeeper/internal/middleware"
	"VaultKeeper/internal/model/view"
	"VaultKeeper/internal/service"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Keeper — операции хранилища, доступные по HTTP. Реализуется *service.Keeper.
type Keeper interface {
	MasterKey() string

	ListKeys(ctx context.Context) ([]view.FavoriteKey, error)
	GetKey(ctx context.Context, pos int) (view.FavoriteKey, error)
	CreateKey(ctx context.Context, in service.KeyInput) (string, error)
	EditKey(ctx context.Context, pos int, in service.KeyInput) (string, error)
	DeleteKey(ctx context.Context, pos int) (string, error)
	KeySecret(ctx context.Context, name string) (string, error)

	ListItems(ctx context.Context) ([]view.Item, error)
	GetItem(ctx context.Context, pos int) (view.Item, error)
	CreateItem(ctx context.Context, in service.ItemInput) (string, error)
	EditItem(ctx context.Context, pos int, in service.ItemInput) (string, error)
	DeleteItem(ctx context.Context, pos int) error

	GeneratePassword() string
	Report(ctx context.Context) (service.Report, error)
}

var _ Keeper = (*service.Keeper)(nil)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(keeper Keeper, logger *zap.SugaredLogger) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)

	keyHandler := NewKeyHandler(keeper, logger)
	itemHandler := NewItemHandler(keeper, logger)
	vaultHandler := NewVaultHandler(keeper, logger)

	// Vault routes
	r.Get("/api/master", vaultHandler.MasterKey)
	r.Get("/api/password", vaultHandler.Password)
	r.Get("/api/report", vaultHandler.Report)

	// Favorite key routes
	r.Get("/api/keys", keyHandler.List)
	r.Post("/api/keys", keyHandler.Create)
	r.Get("/api/keys/secret/{name}", keyHandler.Secret)
	r.Get("/api/keys/{pos}", keyHandler.Get)
	r.Put("/api/keys/{pos}", keyHandler.Edit)
	r.Delete("/api/keys/{pos}", keyHandler.Delete)

	// Item routes
	r.Get("/api/items", itemHandler.List)
	r.Post("/api/items", itemHandler.Create)
	r.Get("/api/items/{pos}", itemHandler.Get)
	r.Put("/api/items/{pos}", itemHandler.Edit)
	r.Delete("/api/items/{pos}", itemHandler.Delete)

	return &Handler{Router: r}
}

// MessageResponse — тело ответа с сообщением валидации или ошибки.
type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeResult отвечает на create/edit/delete: непустое сообщение — 422, иначе success.
func writeResult(w http.ResponseWriter, msg string, success int) {
	if msg != "" {
		writeJSON(w, http.StatusUnprocessableEntity, MessageResponse{Message: msg})
		return
	}
	w.WriteHeader(success)
}

// writeError переводит ошибку сервиса в HTTP-код.
func writeError(w http.ResponseWriter, logger *zap.SugaredLogger, op string, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeJSON(w, http.StatusNotFound, MessageResponse{Message: err.Error()})
	case errors.Is(err, service.ErrKeyInUse), errors.Is(err, service.ErrKeyNotFound):
		writeJSON(w, http.StatusConflict, MessageResponse{Message: err.Error()})
	default:
		logger.Errorw(op+": service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// positionParam читает позицию из пути. Ошибка — уже отправленный 400.
func positionParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	pos, err := strconv.Atoi(chi.URLParam(r, "pos"))
	if err != nil || pos < 0 {
		http.Error(w, "invalid position", http.StatusBadRequest)
		return 0, false
	}
	return pos, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, logger *zap.SugaredLogger, op string, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Warnw(op+": invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return false
	}
	return true
}
