package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jaybesin/internal/usecase"
	"jaybesin/pkg/response"
)

func newInquiryFixture() (*InquiryHandler, *memInquiryRepo) {
	repo := newMemInquiryRepo()
	uc := usecase.NewInquiryUseCase(repo)
	return NewInquiryHandler(uc, nil), repo
}

func TestSubmitInquiry(t *testing.T) {
	h, repo := newInquiryFixture()

	e := newEcho()
	c, rec := newJSONContext(e, http.MethodPost, "/v1/inquiries",
		`{"name":"Esi Boateng","email":"esi@example.com","subject":"SU7 availability","message":"Is the Xiaomi SU7 still open for pre-order?","type":"vehicle"}`)

	require.NoError(t, h.Submit(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)

	assert.Len(t, repo.items, 1)
	for _, saved := range repo.items {
		assert.Equal(t, "new", string(saved.Status))
		assert.NotEmpty(t, saved.Date)
	}
}

func TestSubmitInquiryRejectsMissingFields(t *testing.T) {
	h, repo := newInquiryFixture()

	e := newEcho()
	c, rec := newJSONContext(e, http.MethodPost, "/v1/inquiries", `{"name":"X"}`)

	require.NoError(t, h.Submit(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	assert.Empty(t, repo.items)
}

func TestSubmitInquiryRejectsUnknownType(t *testing.T) {
	h, _ := newInquiryFixture()

	e := newEcho()
	c, rec := newJSONContext(e, http.MethodPost, "/v1/inquiries",
		`{"name":"Esi","email":"esi@example.com","subject":"Hi","message":"Hello","type":"spam"}`)

	require.NoError(t, h.Submit(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMarkRepliedEndpoint(t *testing.T) {
	h, repo := newInquiryFixture()

	e := newEcho()
	c, rec := newJSONContext(e, http.MethodPost, "/v1/inquiries",
		`{"name":"Kojo","email":"kojo@example.com","subject":"Charging","message":"Install cost?"}`)
	require.NoError(t, h.Submit(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var id string
	for k := range repo.items {
		id = k
	}

	c, rec = newJSONContext(e, http.MethodPatch, "/v1/admin/inquiries/"+id+"/reply", "")
	c.SetParamNames("id")
	c.SetParamValues(id)

	require.NoError(t, h.MarkReplied(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "replied", string(repo.items[id].Status))
}

func TestMarkRepliedUnknownID(t *testing.T) {
	h, _ := newInquiryFixture()

	e := newEcho()
	c, rec := newJSONContext(e, http.MethodPatch, "/v1/admin/inquiries/missing/reply", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	require.NoError(t, h.MarkReplied(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
