package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"jaybesin/internal/domain/entity"
	"jaybesin/internal/domain/repository"
	"jaybesin/pkg/errors"
)

const settingsCollection = "settings"

type firestoreSettingsRepository struct {
	client *firestore.Client
}

func NewFirestoreSettingsRepository(client *firestore.Client) repository.SettingsRepository {
	return &firestoreSettingsRepository{
		client: client,
	}
}

func (r *firestoreSettingsRepository) Get(ctx context.Context) (*entity.Settings, error) {
	doc, err := r.client.Collection(settingsCollection).Doc(entity.SettingsDocID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Settings", err)
		}
		return nil, errors.Internal("Failed to get settings", err)
	}

	var settings entity.Settings
	if err := doc.DataTo(&settings); err != nil {
		return nil, errors.Internal("Failed to parse settings data", err)
	}

	return &settings, nil
}

func (r *firestoreSettingsRepository) Save(ctx context.Context, settings *entity.Settings) error {
	// MergeAll requires map data, so the struct is flattened explicitly.
	_, err := r.client.Collection(settingsCollection).Doc(entity.SettingsDocID).Set(ctx, settingsToMap(settings), firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to save settings", err)
	}

	return nil
}

func settingsToMap(s *entity.Settings) map[string]interface{} {
	heroSlides := make([]map[string]interface{}, len(s.HeroSlides))
	for i, slide := range s.HeroSlides {
		heroSlides[i] = map[string]interface{}{
			"image": slide.Image,
			"label": slide.Label,
		}
	}

	testimonials := make([]map[string]interface{}, len(s.Testimonials))
	for i, t := range s.Testimonials {
		testimonials[i] = map[string]interface{}{
			"name":  t.Name,
			"role":  t.Role,
			"text":  t.Text,
			"stars": t.Stars,
		}
	}

	return map[string]interface{}{
		"companyName":      s.CompanyName,
		"tagline":          s.Tagline,
		"email":            s.Email,
		"phone":            s.Phone,
		"whatsapp":         s.Whatsapp,
		"address":          s.Address,
		"logo":             s.Logo,
		"showPricesGlobal": s.ShowPricesGlobal,
		"showGhsPrice":     s.ShowGhsPrice,
		"ghsRate":          s.GhsRate,
		"annBarText":       s.AnnBarText,
		"annBarLink":       s.AnnBarLink,
		"annBarOn":         s.AnnBarOn,
		"heroSlides":       heroSlides,
		"theme": map[string]interface{}{
			"accent1":       s.Theme.Accent1,
			"accent2":       s.Theme.Accent2,
			"accent3":       s.Theme.Accent3,
			"accent4":       s.Theme.Accent4,
			"bgPrimary":     s.Theme.BgPrimary,
			"bgSecondary":   s.Theme.BgSecondary,
			"bgTertiary":    s.Theme.BgTertiary,
			"bgCard":        s.Theme.BgCard,
			"bgInput":       s.Theme.BgInput,
			"textPrimary":   s.Theme.TextPrimary,
			"textSecondary": s.Theme.TextSecondary,
			"textMuted":     s.Theme.TextMuted,
			"borderHex":     s.Theme.BorderHex,
			"navBg":         s.Theme.NavBg,
			"footerBg":      s.Theme.FooterBg,
			"btnText":       s.Theme.BtnText,
		},
		"testimonials": testimonials,
	}
}
