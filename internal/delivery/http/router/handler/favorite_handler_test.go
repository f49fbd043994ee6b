package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFavoriteUsecase struct {
	toggleOutput *usecase.ToggleOutput
	favorited    bool
	list         *entity.FavoriteList
	err          error
}

func (s *stubFavoriteUsecase) Toggle(ctx context.Context, input *usecase.ToggleInput) (*usecase.ToggleOutput, error) {
	return s.toggleOutput, s.err
}

func (s *stubFavoriteUsecase) IsFavorited(ctx context.Context, input *usecase.IsFavoriteInput) (bool, error) {
	return s.favorited, s.err
}

func (s *stubFavoriteUsecase) List(ctx context.Context, user string) (*entity.FavoriteList, error) {
	return s.list, s.err
}

func TestFavoriteHandler_Toggle_Added(t *testing.T) {
	uc := &stubFavoriteUsecase{toggleOutput: &usecase.ToggleOutput{Status: entity.ToggleAdded}}
	handler := NewFavoriteHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(http.MethodPost, "/favorite",
		`{"user":"user@example.com","productId":"prod-1"}`)

	require.NoError(t, handler.Toggle(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"added"}`, rec.Body.String())
}

func TestFavoriteHandler_Toggle_Removed(t *testing.T) {
	uc := &stubFavoriteUsecase{toggleOutput: &usecase.ToggleOutput{Status: entity.ToggleRemoved}}
	handler := NewFavoriteHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(http.MethodPost, "/favorite",
		`{"user":"user@example.com","productId":"prod-1"}`)

	require.NoError(t, handler.Toggle(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"removed"}`, rec.Body.String())
}

func TestFavoriteHandler_Toggle_MissingFieldRejectedBeforeUsecase(t *testing.T) {
	uc := &stubFavoriteUsecase{toggleOutput: &usecase.ToggleOutput{Status: entity.ToggleAdded}}
	handler := NewFavoriteHandler(uc, newDiscardLogger())

	cases := []struct {
		name string
		body string
	}{
		{"missing product", `{"user":"user@example.com"}`},
		{"missing user", `{"productId":"prod-1"}`},
		{"empty body", `null`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newJSONContext(http.MethodPost, "/favorite", tc.body)

			err := handler.Toggle(c)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrMissingFields))
		})
	}
}

func TestFavoriteHandler_IsFavorite(t *testing.T) {
	uc := &stubFavoriteUsecase{favorited: true}
	handler := NewFavoriteHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(http.MethodPost, "/isfavorite",
		`{"user":"user@example.com","productId":"prod-1"}`)

	require.NoError(t, handler.IsFavorite(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"isFavorited":true}`, rec.Body.String())
}

func TestFavoriteHandler_List(t *testing.T) {
	uc := &stubFavoriteUsecase{list: &entity.FavoriteList{
		User:       "user@example.com",
		ProductIDs: []string{"prod-1", "prod-2"},
	}}
	handler := NewFavoriteHandler(uc, newDiscardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/favorites/user@example.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("user")
	c.SetParamValues("user@example.com")

	require.NoError(t, handler.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user":"user@example.com","productIds":["prod-1","prod-2"]}`, rec.Body.String())
}

func TestFavoriteHandler_List_EmptyListStaysAnArray(t *testing.T) {
	uc := &stubFavoriteUsecase{list: &entity.FavoriteList{User: "user@example.com"}}
	handler := NewFavoriteHandler(uc, newDiscardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/favorites/user@example.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("user")
	c.SetParamValues("user@example.com")

	require.NoError(t, handler.List(c))
	assert.JSONEq(t, `{"user":"user@example.com","productIds":[]}`, rec.Body.String())
}
