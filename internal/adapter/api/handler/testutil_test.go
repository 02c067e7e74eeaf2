package handler

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"jaybesin/internal/adapter/api"
	"jaybesin/internal/domain/entity"
	"jaybesin/pkg/errors"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = api.NewValidator()
	return e
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// Test doubles. The live feed fakes deliver one fixed snapshot on Watch,
// which is exactly how the real subscriptions prime the replicas.

type fakeAuthClient struct {
	token     string
	uid       string
	signInErr error
}

func (a *fakeAuthClient) SignInWithEmailPassword(email, password string) (string, error) {
	if a.signInErr != nil {
		return "", a.signInErr
	}
	return a.token, nil
}

func (a *fakeAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	return a.uid, nil
}

func (a *fakeAuthClient) RevokeTokens(ctx context.Context, uid string) error { return nil }

func (a *fakeAuthClient) IsAdmin(ctx context.Context, uid string) (bool, error) { return true, nil }

type nopBroadcaster struct{}

func (nopBroadcaster) Broadcast(message []byte) {}
func (nopBroadcaster) ClientCount() int         { return 0 }

type staticVehicleRepo struct{ list []*entity.Vehicle }

func (r *staticVehicleRepo) Save(ctx context.Context, v *entity.Vehicle) error { return nil }
func (r *staticVehicleRepo) GetByID(ctx context.Context, id string) (*entity.Vehicle, error) {
	for _, v := range r.list {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, errors.NotFound("Vehicle", nil)
}
func (r *staticVehicleRepo) List(ctx context.Context) ([]*entity.Vehicle, error) { return r.list, nil }
func (r *staticVehicleRepo) Delete(ctx context.Context, id string) error         { return nil }
func (r *staticVehicleRepo) Watch(ctx context.Context, fn func([]*entity.Vehicle)) func() {
	fn(r.list)
	return func() {}
}

type staticChargerRepo struct{ list []*entity.Charger }

func (r *staticChargerRepo) Save(ctx context.Context, c *entity.Charger) error { return nil }
func (r *staticChargerRepo) GetByID(ctx context.Context, id string) (*entity.Charger, error) {
	return nil, errors.NotFound("Charger", nil)
}
func (r *staticChargerRepo) List(ctx context.Context) ([]*entity.Charger, error) { return r.list, nil }
func (r *staticChargerRepo) Delete(ctx context.Context, id string) error         { return nil }
func (r *staticChargerRepo) Watch(ctx context.Context, fn func([]*entity.Charger)) func() {
	fn(r.list)
	return func() {}
}

type staticPartRepo struct{ list []*entity.Part }

func (r *staticPartRepo) Save(ctx context.Context, p *entity.Part) error { return nil }
func (r *staticPartRepo) GetByID(ctx context.Context, id string) (*entity.Part, error) {
	return nil, errors.NotFound("Part", nil)
}
func (r *staticPartRepo) List(ctx context.Context) ([]*entity.Part, error) { return r.list, nil }
func (r *staticPartRepo) Delete(ctx context.Context, id string) error      { return nil }
func (r *staticPartRepo) Watch(ctx context.Context, fn func([]*entity.Part)) func() {
	fn(r.list)
	return func() {}
}

type staticOrderRepo struct{ list []*entity.Order }

func (r *staticOrderRepo) Save(ctx context.Context, o *entity.Order) error { return nil }
func (r *staticOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	for _, o := range r.list {
		if o.ID == id {
			cp := *o
			return &cp, nil
		}
	}
	return nil, errors.NotFound("Order", nil)
}
func (r *staticOrderRepo) List(ctx context.Context) ([]*entity.Order, error) { return r.list, nil }
func (r *staticOrderRepo) Delete(ctx context.Context, id string) error       { return nil }
func (r *staticOrderRepo) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus, tracking []entity.TrackingStep) error {
	return nil
}
func (r *staticOrderRepo) Watch(ctx context.Context, fn func([]*entity.Order)) func() {
	fn(r.list)
	return func() {}
}

type memInquiryRepo struct {
	items  map[string]*entity.Inquiry
	nextID int
}

func newMemInquiryRepo() *memInquiryRepo {
	return &memInquiryRepo{items: map[string]*entity.Inquiry{}}
}

func (r *memInquiryRepo) Create(ctx context.Context, i *entity.Inquiry) error {
	r.nextID++
	i.ID = fmt.Sprintf("inq-%d", r.nextID)
	cp := *i
	r.items[i.ID] = &cp
	return nil
}
func (r *memInquiryRepo) GetByID(ctx context.Context, id string) (*entity.Inquiry, error) {
	i, ok := r.items[id]
	if !ok {
		return nil, errors.NotFound("Inquiry", nil)
	}
	cp := *i
	return &cp, nil
}
func (r *memInquiryRepo) List(ctx context.Context) ([]*entity.Inquiry, error) {
	out := make([]*entity.Inquiry, 0, len(r.items))
	for _, i := range r.items {
		out = append(out, i)
	}
	return out, nil
}
func (r *memInquiryRepo) Delete(ctx context.Context, id string) error {
	delete(r.items, id)
	return nil
}
func (r *memInquiryRepo) UpdateStatus(ctx context.Context, id string, status entity.InquiryStatus) error {
	i, ok := r.items[id]
	if !ok {
		return errors.NotFound("Inquiry", nil)
	}
	i.Status = status
	return nil
}
func (r *memInquiryRepo) Watch(ctx context.Context, fn func([]*entity.Inquiry)) func() {
	fn(nil)
	return func() {}
}
