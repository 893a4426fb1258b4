package handlers_test

import (
	"VaultKeeper/internal/handlers"
	"VaultKeeper/internal/model/view"
	"VaultKeeper/internal/service"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Local light mock
type hMockKeeper struct{ mock.Mock }

func (m *hMockKeeper) MasterKey() string { return m.Called().String(0) }

func (m *hMockKeeper) ListKeys(ctx context.Context) ([]view.FavoriteKey, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]view.FavoriteKey); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockKeeper) GetKey(ctx context.Context, pos int) (view.FavoriteKey, error) {
	args := m.Called(ctx, pos)
	return args.Get(0).(view.FavoriteKey), args.Error(1)
}
func (m *hMockKeeper) CreateKey(ctx context.Context, in service.KeyInput) (string, error) {
	args := m.Called(ctx, in)
	return args.String(0), args.Error(1)
}
func (m *hMockKeeper) EditKey(ctx context.Context, pos int, in service.KeyInput) (string, error) {
	args := m.Called(ctx, pos, in)
	return args.String(0), args.Error(1)
}
func (m *hMockKeeper) DeleteKey(ctx context.Context, pos int) (string, error) {
	args := m.Called(ctx, pos)
	return args.String(0), args.Error(1)
}
func (m *hMockKeeper) KeySecret(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}
func (m *hMockKeeper) ListItems(ctx context.Context) ([]view.Item, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]view.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockKeeper) GetItem(ctx context.Context, pos int) (view.Item, error) {
	args := m.Called(ctx, pos)
	return args.Get(0).(view.Item), args.Error(1)
}
func (m *hMockKeeper) CreateItem(ctx context.Context, in service.ItemInput) (string, error) {
	args := m.Called(ctx, in)
	return args.String(0), args.Error(1)
}
func (m *hMockKeeper) EditItem(ctx context.Context, pos int, in service.ItemInput) (string, error) {
	args := m.Called(ctx, pos, in)
	return args.String(0), args.Error(1)
}
func (m *hMockKeeper) DeleteItem(ctx context.Context, pos int) error {
	return m.Called(ctx, pos).Error(0)
}
func (m *hMockKeeper) GeneratePassword() string { return m.Called().String(0) }
func (m *hMockKeeper) Report(ctx context.Context) (service.Report, error) {
	args := m.Called(ctx)
	return args.Get(0).(service.Report), args.Error(1)
}

var _ handlers.Keeper = (*hMockKeeper)(nil)

func newHandlersTestRouter(t *testing.T) (http.Handler, *hMockKeeper) {
	t.Helper()
	k := &hMockKeeper{}
	h := handlers.NewHandler(k, zap.NewNop().Sugar())
	t.Cleanup(func() { k.AssertExpectations(t) })
	return h.Router, k
}
