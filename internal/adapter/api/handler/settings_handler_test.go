package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jaybesin/internal/domain/entity"
	"jaybesin/internal/usecase"
	"jaybesin/pkg/errors"
)

type memSettingsRepo struct {
	stored *entity.Settings
}

func (r *memSettingsRepo) Get(ctx context.Context) (*entity.Settings, error) {
	if r.stored == nil {
		return nil, errors.NotFound("Settings", nil)
	}
	return r.stored, nil
}

func (r *memSettingsRepo) Save(ctx context.Context, s *entity.Settings) error {
	cp := *s
	r.stored = &cp
	return nil
}

func TestGetSettingsReturnsDefaultsWhenEmpty(t *testing.T) {
	h := NewSettingsHandler(usecase.NewSettingsUseCase(&memSettingsRepo{}, nopUploader{}))

	e := newEcho()
	c, rec := newJSONContext(e, http.MethodGet, "/v1/settings", "")

	require.NoError(t, h.GetSettings(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Jaybesin Autos")
}

func TestUpdateSettings(t *testing.T) {
	repo := &memSettingsRepo{}
	h := NewSettingsHandler(usecase.NewSettingsUseCase(repo, nopUploader{}))

	e := newEcho()
	c, rec := newJSONContext(e, http.MethodPut, "/v1/admin/settings",
		`{"companyName":"Jaybesin Autos","ghsRate":15.9,"showPricesGlobal":false,"showGhsPrice":true,"annBarText":"New stock arriving","annBarOn":true}`)

	require.NoError(t, h.UpdateSettings(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, repo.stored)
	assert.Equal(t, 15.9, repo.stored.GhsRate)
	assert.False(t, repo.stored.ShowPricesGlobal)
	assert.True(t, repo.stored.AnnBarOn)
}

func TestUpdateSettingsRequiresCompanyName(t *testing.T) {
	h := NewSettingsHandler(usecase.NewSettingsUseCase(&memSettingsRepo{}, nopUploader{}))

	e := newEcho()
	c, rec := newJSONContext(e, http.MethodPut, "/v1/admin/settings", `{"ghsRate":16.2}`)

	require.NoError(t, h.UpdateSettings(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
