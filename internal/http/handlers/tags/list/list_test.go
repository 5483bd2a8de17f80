package list

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mateuslro/creator-hub/internal/models"
)

// MockService implementa list.Service.
type MockService struct {
	mock.Mock
}

func (m *MockService) ListTags(ctx context.Context) ([]*models.Tag, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]*models.Tag), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestListHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	t.Run("tags em ordem ascendente de nome", func(t *testing.T) {
		mockService := new(MockService)
		mockService.On("ListTags", mock.Anything).Return([]*models.Tag{
			{ID: 1, Name: "Amador", Slug: "amador"},
			{ID: 2, Name: "Top", Slug: "top"},
		}, nil)

		handler := New(logger, mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/tags", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var tags []*models.Tag
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &tags))
		assert.Len(t, tags, 2)
		assert.Equal(t, "Amador", tags[0].Name)
		assert.Equal(t, "Top", tags[1].Name)
		mockService.AssertExpectations(t)
	})

	t.Run("falha do serviço devolve 500", func(t *testing.T) {
		mockService := new(MockService)
		mockService.On("ListTags", mock.Anything).Return(nil, errors.New("db error"))

		handler := New(logger, mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/tags", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), `"error":"internal error"`)
	})
}
