package usecase

import (
	"context"
	"fmt"
	"sync"

	"jaybesin/internal/domain/entity"
	"jaybesin/pkg/errors"
)

// In-memory doubles for the repository and infrastructure interfaces.

type fakeVehicleRepo struct {
	mu      sync.Mutex
	items   map[string]*entity.Vehicle
	nextID  int
	deleted []string
	watchFn func([]*entity.Vehicle)
	stopped int
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{items: map[string]*entity.Vehicle{}}
}

func (r *fakeVehicleRepo) Save(ctx context.Context, v *entity.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v.ID == "" {
		r.nextID++
		v.ID = fmt.Sprintf("gen-%d", r.nextID)
	}
	cp := *v
	r.items[v.ID] = &cp
	return nil
}

func (r *fakeVehicleRepo) GetByID(ctx context.Context, id string) (*entity.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.items[id]
	if !ok {
		return nil, errors.NotFound("Vehicle", nil)
	}
	cp := *v
	return &cp, nil
}

func (r *fakeVehicleRepo) List(ctx context.Context) ([]*entity.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Vehicle, 0, len(r.items))
	for _, v := range r.items {
		cp := *v
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeVehicleRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeVehicleRepo) Watch(ctx context.Context, fn func([]*entity.Vehicle)) func() {
	r.mu.Lock()
	r.watchFn = fn
	r.mu.Unlock()
	return func() {
		r.mu.Lock()
		r.stopped++
		r.mu.Unlock()
	}
}

func (r *fakeVehicleRepo) emit(list []*entity.Vehicle) { r.watchFn(list) }

type fakeChargerRepo struct {
	items   map[string]*entity.Charger
	watchFn func([]*entity.Charger)
	stopped int
}

func newFakeChargerRepo() *fakeChargerRepo {
	return &fakeChargerRepo{items: map[string]*entity.Charger{}}
}

func (r *fakeChargerRepo) Save(ctx context.Context, c *entity.Charger) error {
	if c.ID == "" {
		c.ID = fmt.Sprintf("gen-%d", len(r.items)+1)
	}
	r.items[c.ID] = c
	return nil
}

func (r *fakeChargerRepo) GetByID(ctx context.Context, id string) (*entity.Charger, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, errors.NotFound("Charger", nil)
	}
	return c, nil
}

func (r *fakeChargerRepo) List(ctx context.Context) ([]*entity.Charger, error) {
	out := make([]*entity.Charger, 0, len(r.items))
	for _, c := range r.items {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeChargerRepo) Delete(ctx context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeChargerRepo) Watch(ctx context.Context, fn func([]*entity.Charger)) func() {
	r.watchFn = fn
	return func() { r.stopped++ }
}

type fakePartRepo struct {
	items   map[string]*entity.Part
	watchFn func([]*entity.Part)
	stopped int
}

func newFakePartRepo() *fakePartRepo {
	return &fakePartRepo{items: map[string]*entity.Part{}}
}

func (r *fakePartRepo) Save(ctx context.Context, p *entity.Part) error {
	if p.ID == "" {
		p.ID = fmt.Sprintf("gen-%d", len(r.items)+1)
	}
	r.items[p.ID] = p
	return nil
}

func (r *fakePartRepo) GetByID(ctx context.Context, id string) (*entity.Part, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, errors.NotFound("Part", nil)
	}
	return p, nil
}

func (r *fakePartRepo) List(ctx context.Context) ([]*entity.Part, error) {
	out := make([]*entity.Part, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePartRepo) Delete(ctx context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakePartRepo) Watch(ctx context.Context, fn func([]*entity.Part)) func() {
	r.watchFn = fn
	return func() { r.stopped++ }
}

type fakeOrderRepo struct {
	items   map[string]*entity.Order
	watchFn func([]*entity.Order)
	stopped int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{items: map[string]*entity.Order{}}
}

func (r *fakeOrderRepo) Save(ctx context.Context, o *entity.Order) error {
	cp := *o
	r.items[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	o, ok := r.items[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) List(ctx context.Context) ([]*entity.Order, error) {
	out := make([]*entity.Order, 0, len(r.items))
	for _, o := range r.items {
		out = append(out, o)
	}
	return out, nil
}

func (r *fakeOrderRepo) Delete(ctx context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus, tracking []entity.TrackingStep) error {
	o, ok := r.items[id]
	if !ok {
		return errors.NotFound("Order", nil)
	}
	o.Status = status
	o.Tracking = tracking
	return nil
}

func (r *fakeOrderRepo) Watch(ctx context.Context, fn func([]*entity.Order)) func() {
	r.watchFn = fn
	return func() { r.stopped++ }
}

type fakeInquiryRepo struct {
	items   map[string]*entity.Inquiry
	nextID  int
	watchFn func([]*entity.Inquiry)
	stopped int
}

func newFakeInquiryRepo() *fakeInquiryRepo {
	return &fakeInquiryRepo{items: map[string]*entity.Inquiry{}}
}

func (r *fakeInquiryRepo) Create(ctx context.Context, i *entity.Inquiry) error {
	if i.ID == "" {
		r.nextID++
		i.ID = fmt.Sprintf("inq-%d", r.nextID)
	}
	cp := *i
	r.items[i.ID] = &cp
	return nil
}

func (r *fakeInquiryRepo) GetByID(ctx context.Context, id string) (*entity.Inquiry, error) {
	i, ok := r.items[id]
	if !ok {
		return nil, errors.NotFound("Inquiry", nil)
	}
	cp := *i
	return &cp, nil
}

func (r *fakeInquiryRepo) List(ctx context.Context) ([]*entity.Inquiry, error) {
	out := make([]*entity.Inquiry, 0, len(r.items))
	for _, i := range r.items {
		out = append(out, i)
	}
	return out, nil
}

func (r *fakeInquiryRepo) Delete(ctx context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeInquiryRepo) UpdateStatus(ctx context.Context, id string, status entity.InquiryStatus) error {
	i, ok := r.items[id]
	if !ok {
		return errors.NotFound("Inquiry", nil)
	}
	i.Status = status
	return nil
}

func (r *fakeInquiryRepo) Watch(ctx context.Context, fn func([]*entity.Inquiry)) func() {
	r.watchFn = fn
	return func() { r.stopped++ }
}

type fakeSettingsRepo struct {
	stored *entity.Settings
	saves  int
}

func (r *fakeSettingsRepo) Get(ctx context.Context) (*entity.Settings, error) {
	if r.stored == nil {
		return nil, errors.NotFound("Settings", nil)
	}
	cp := *r.stored
	return &cp, nil
}

func (r *fakeSettingsRepo) Save(ctx context.Context, s *entity.Settings) error {
	cp := *s
	r.stored = &cp
	r.saves++
	return nil
}

type fakeUploader struct {
	uploads map[string]string // path -> dataURL
	deleted []string
	fail    bool
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{uploads: map[string]string{}}
}

func (u *fakeUploader) UploadDataURL(ctx context.Context, dataURL, path string) (string, error) {
	if u.fail {
		return "", fmt.Errorf("upload refused")
	}
	u.uploads[path] = dataURL
	return "https://storage.googleapis.com/test-bucket/" + path, nil
}

func (u *fakeUploader) DeleteByURL(ctx context.Context, fileURL string) error {
	u.deleted = append(u.deleted, fileURL)
	return nil
}

type fakeBroadcaster struct {
	mu       sync.Mutex
	messages [][]byte
	clients  int
}

func (b *fakeBroadcaster) Broadcast(message []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.messages = append(b.messages, message)
}

func (b *fakeBroadcaster) ClientCount() int { return b.clients }

func (b *fakeBroadcaster) all() [][]byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([][]byte, len(b.messages))
	copy(out, b.messages)
	return out
}

type fakeAuthClient struct {
	token      string
	uid        string
	admin      bool
	signInErr  error
	verifyErr  error
	revokedUID string
}

func (a *fakeAuthClient) SignInWithEmailPassword(email, password string) (string, error) {
	if a.signInErr != nil {
		return "", a.signInErr
	}
	return a.token, nil
}

func (a *fakeAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	if a.verifyErr != nil {
		return "", a.verifyErr
	}
	return a.uid, nil
}

func (a *fakeAuthClient) RevokeTokens(ctx context.Context, uid string) error {
	a.revokedUID = uid
	return nil
}

func (a *fakeAuthClient) IsAdmin(ctx context.Context, uid string) (bool, error) {
	return a.admin, nil
}
