package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jaybesin/internal/domain/entity"
	"jaybesin/internal/usecase"
)

type nopUploader struct{}

func (nopUploader) UploadDataURL(ctx context.Context, dataURL, path string) (string, error) {
	return "https://storage.googleapis.com/test-bucket/" + path, nil
}
func (nopUploader) DeleteByURL(ctx context.Context, fileURL string) error { return nil }

func newVehicleFixture(vehicles []*entity.Vehicle) *VehicleHandler {
	vehicleRepo := &staticVehicleRepo{list: vehicles}
	feed := usecase.NewLiveFeedUseCase(
		vehicleRepo,
		&staticChargerRepo{},
		&staticPartRepo{},
		&staticOrderRepo{},
		newMemInquiryRepo(),
		nopBroadcaster{},
	)
	feed.Start(context.Background())

	catalog := usecase.NewCatalogUseCase(vehicleRepo, &staticChargerRepo{}, &staticPartRepo{}, nopUploader{})
	return NewVehicleHandler(catalog, feed)
}

func TestListVehiclesServesLiveReplica(t *testing.T) {
	h := newVehicleFixture([]*entity.Vehicle{
		{ID: "1", Brand: "Xiaomi", Model: "SU7", Availability: entity.AvailabilityPreorder},
		{ID: "2", Brand: "BYD", Model: "Han EV", Availability: entity.AvailabilityInStock},
	})

	e := newEcho()
	c, rec := newJSONContext(e, http.MethodGet, "/v1/vehicles", "")

	require.NoError(t, h.ListVehicles(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Han EV")
	assert.Contains(t, rec.Body.String(), "SU7")
}

func TestCreateVehicleValidatesAvailability(t *testing.T) {
	h := newVehicleFixture(nil)

	e := newEcho()
	c, rec := newJSONContext(e, http.MethodPost, "/v1/admin/vehicles",
		`{"brand":"Tank","model":"500","year":2024,"type":"4x4","fuel":"Hybrid","drivetrain":"4WD","availability":"sold_out"}`)

	require.NoError(t, h.CreateVehicle(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "availability")
}

func TestCreateVehicle(t *testing.T) {
	h := newVehicleFixture(nil)

	e := newEcho()
	c, rec := newJSONContext(e, http.MethodPost, "/v1/admin/vehicles",
		`{"brand":"Geely","model":"Monjaro","year":2024,"type":"SUV","fuel":"Petrol","drivetrain":"AWD","price":34000,"duties":8500,"totalGhana":42500,"availability":"in_stock","showPrice":true}`)

	require.NoError(t, h.CreateVehicle(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Monjaro")
}

func TestGetVehicleNotFound(t *testing.T) {
	h := newVehicleFixture(nil)

	e := newEcho()
	c, rec := newJSONContext(e, http.MethodGet, "/v1/vehicles/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	require.NoError(t, h.GetVehicle(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
