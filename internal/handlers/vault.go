package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

// VaultHandler отдаёт сведения о хранилище целиком.
type VaultHandler struct {
	Keeper Keeper
	Logger *zap.SugaredLogger
}

func NewVaultHandler(keeper Keeper, logger *zap.SugaredLogger) *VaultHandler {
	return &VaultHandler{Keeper: keeper, Logger: logger}
}

// MasterKeyResponse — мастер-ключ хранилища.
type MasterKeyResponse struct {
	MasterKey string `json:"master_key"`
}

// PasswordResponse — сгенерированный пароль.
type PasswordResponse struct {
	Password string `json:"password"`
}

// MasterKey GET /api/master
func (h *VaultHandler) MasterKey(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MasterKeyResponse{MasterKey: h.Keeper.MasterKey()})
}

// Password GET /api/password
func (h *VaultHandler) Password(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, PasswordResponse{Password: h.Keeper.GeneratePassword()})
}

// Report GET /api/report
func (h *VaultHandler) Report(w http.ResponseWriter, r *http.Request) {
	rep, err := h.Keeper.Report(r.Context())
	if err != nil {
		writeError(w, h.Logger, "Report", err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}
