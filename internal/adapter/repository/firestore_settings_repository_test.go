package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jaybesin/internal/domain/entity"
)

func TestSettingsToMapCoversEveryField(t *testing.T) {
	settings := &entity.Settings{
		CompanyName:      "Jaybesin Autos",
		Tagline:          "Tagline",
		Email:            "info@jaybesin.com",
		Phone:            "+233",
		Whatsapp:         "+233",
		Address:          "Accra",
		Logo:             "https://storage.googleapis.com/b/brand/logo",
		ShowPricesGlobal: true,
		ShowGhsPrice:     true,
		GhsRate:          16.2,
		AnnBarText:       "text",
		AnnBarLink:       "link",
		AnnBarOn:         true,
		HeroSlides:       []entity.HeroSlide{{Image: "img", Label: "lbl"}},
		Theme:            entity.Theme{Accent1: "#00E5A0", BtnText: "#050A0E"},
		Testimonials:     []entity.Testimonial{{Name: "Kwame", Role: "Accra", Text: "Great", Stars: 5}},
	}

	m := settingsToMap(settings)

	// Every document field the merge write can touch must be present,
	// otherwise stale values would survive a save that clears them.
	for _, key := range []string{
		"companyName", "tagline", "email", "phone", "whatsapp", "address",
		"logo", "showPricesGlobal", "showGhsPrice", "ghsRate",
		"annBarText", "annBarLink", "annBarOn", "heroSlides", "theme",
		"testimonials",
	} {
		_, ok := m[key]
		assert.True(t, ok, "missing key %q", key)
	}

	theme, ok := m["theme"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "#00E5A0", theme["accent1"])
	assert.Len(t, theme, 16)

	slides, ok := m["heroSlides"].([]map[string]interface{})
	require.True(t, ok)
	require.Len(t, slides, 1)
	assert.Equal(t, "lbl", slides[0]["label"])
}

func TestSettingsToMapIsDeterministic(t *testing.T) {
	settings := &entity.Settings{CompanyName: "Jaybesin Autos", GhsRate: 16.2}

	// Flattening the same settings twice yields the same payload, so
	// repeated merge writes are idempotent.
	assert.Equal(t, settingsToMap(settings), settingsToMap(settings))
}
