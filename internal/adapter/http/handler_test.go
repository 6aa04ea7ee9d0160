package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adcraft/internal/core/domain"
	"adcraft/internal/core/port"
	"adcraft/internal/parse"
)

type stubUseCase struct {
	draft     *port.Draft
	draftErr  error
	creative  *domain.Creative
	saveErr   error
	report    *port.BatchImageReport
	reportErr error
	creatives []domain.Creative
	listErr   error

	gotPrompt      string
	gotInstruction string
	gotCampaignID  string
	gotLimit       int
}

func (s *stubUseCase) GenerateDraft(_ context.Context, promptText string) (*port.Draft, error) {
	s.gotPrompt = promptText
	return s.draft, s.draftErr
}

func (s *stubUseCase) ModifyDraft(_ context.Context, _, instruction string) (*port.Draft, error) {
	s.gotInstruction = instruction
	return s.draft, s.draftErr
}

func (s *stubUseCase) SaveCreative(_ context.Context, promptText, _ string) (*domain.Creative, error) {
	s.gotPrompt = promptText
	return s.creative, s.saveErr
}

func (s *stubUseCase) GenerateImages(_ context.Context, campaignID string) (*port.BatchImageReport, error) {
	s.gotCampaignID = campaignID
	return s.report, s.reportErr
}

func (s *stubUseCase) ListCreatives(_ context.Context, limit int) ([]domain.Creative, error) {
	s.gotLimit = limit
	return s.creatives, s.listErr
}

func newTestHandler(svc port.CreativeUseCase) *Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(svc, logger, "")
}

func do(t *testing.T, h *Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func TestHandleGenerate(t *testing.T) {
	stub := &stubUseCase{draft: &port.Draft{RawText: "Title: Hello", Exemplars: 2}}
	rec := do(t, newTestHandler(stub), http.MethodPost, "/api/v1/campaigns/generate",
		`{"prompt":"summer shoes"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "summer shoes", stub.gotPrompt)

	var draft port.Draft
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &draft))
	assert.Equal(t, "Title: Hello", draft.RawText)
	assert.Equal(t, 2, draft.Exemplars)
}

func TestHandleGenerateValidation(t *testing.T) {
	h := newTestHandler(&stubUseCase{})

	rec := do(t, h, http.MethodPost, "/api/v1/campaigns/generate", `{"prompt":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/campaigns/generate", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGenerateUpstreamFailure(t *testing.T) {
	stub := &stubUseCase{draftErr: &port.StageError{
		Stage: port.StageGenerating,
		Err:   port.ErrGenerationFailed,
	}}
	rec := do(t, newTestHandler(stub), http.MethodPost, "/api/v1/campaigns/generate",
		`{"prompt":"x"}`)

	require.Equal(t, http.StatusBadGateway, rec.Code)

	var payload struct {
		Stage string `json:"stage"`
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "generating", payload.Stage)
	assert.NotEmpty(t, payload.Error)
}

func TestHandleModify(t *testing.T) {
	stub := &stubUseCase{draft: &port.Draft{RawText: "Title: Revised"}}
	h := newTestHandler(stub)

	rec := do(t, h, http.MethodPost, "/api/v1/campaigns/modify",
		`{"raw_text":"Title: Old","instruction":"shorter headline"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "shorter headline", stub.gotInstruction)

	rec = do(t, h, http.MethodPost, "/api/v1/campaigns/modify", `{"raw_text":"Title: Old"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSave(t *testing.T) {
	stub := &stubUseCase{creative: &domain.Creative{ID: "cr-1", CampaignID: "ca-1"}}
	rec := do(t, newTestHandler(stub), http.MethodPost, "/api/v1/campaigns/save",
		`{"prompt":"summer shoes","raw_text":"Title: Hello"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var creative domain.Creative
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &creative))
	assert.Equal(t, "cr-1", creative.ID)
}

func TestHandleSaveParseFailure(t *testing.T) {
	stub := &stubUseCase{saveErr: &port.StageError{
		Stage: port.StageParsing,
		Err: &parse.MissingFieldError{
			Field: "background.description",
			Tried: []string{`"Background Description: <text>"`},
		},
	}}
	rec := do(t, newTestHandler(stub), http.MethodPost, "/api/v1/campaigns/save",
		`{"prompt":"x","raw_text":"Title: Only"}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var payload struct {
		Stage string `json:"stage"`
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "parsing", payload.Stage)
	assert.Contains(t, payload.Error, "Background Description")
}

func TestHandleSavePersistenceFailure(t *testing.T) {
	stub := &stubUseCase{saveErr: &port.StageError{
		Stage: port.StagePersisting,
		Err:   &port.PersistenceError{RawText: "Title: Kept", Err: errors.New("timeout")},
	}}
	rec := do(t, newTestHandler(stub), http.MethodPost, "/api/v1/campaigns/save",
		`{"prompt":"x","raw_text":"Title: Kept"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var payload struct {
		Stage string `json:"stage"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "persisting", payload.Stage)
}

func TestHandleGenerateImages(t *testing.T) {
	stub := &stubUseCase{report: &port.BatchImageReport{Total: 2, Succeeded: 1, Failed: 1}}
	rec := do(t, newTestHandler(stub), http.MethodPost, "/api/v1/campaigns/ca-9/images", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ca-9", stub.gotCampaignID)

	var report port.BatchImageReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.Failed)
}

func TestHandleListCreatives(t *testing.T) {
	stub := &stubUseCase{creatives: []domain.Creative{{ID: "cr-1"}, {ID: "cr-2"}}}
	h := newTestHandler(stub)

	rec := do(t, h, http.MethodGet, "/api/v1/creatives?limit=10", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10, stub.gotLimit)

	var creatives []domain.Creative
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &creatives))
	assert.Len(t, creatives, 2)

	rec = do(t, h, http.MethodGet, "/api/v1/creatives?limit=nope", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
