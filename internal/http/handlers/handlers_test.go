package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/brandcopilot/brand-copilot/internal/domain"
	"github.com/brandcopilot/brand-copilot/internal/pkg/errors"
	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
	"github.com/brandcopilot/brand-copilot/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubBriefingService struct{}

func (stubBriefingService) AnalyzeBrief(ctx context.Context, text string, projectID *uuid.UUID) (services.BriefAnalysis, error) {
	return services.BriefAnalysis{Keywords: []string{}, Attributes: []string{}, Sentiment: "neutral"}, nil
}

func (stubBriefingService) UpdateBrief(ctx context.Context, briefID uuid.UUID, keywords, attributes []string) error {
	return errors.ErrNotFound
}

func (stubBriefingService) ListBriefs(ctx context.Context, projectID uuid.UUID) ([]*types.Brief, error) {
	return nil, nil
}

func (stubBriefingService) ParseDocument(ctx context.Context, filename, mimeType string, data []byte) (services.DocumentParse, error) {
	return services.DocumentParse{
		Filename:    filename,
		Sections:    nil,
		TotalWords:  0,
		ProcessedAt: time.Now().UTC(),
	}, nil
}

type stubStrategicService struct {
	err error
}

func (s stubStrategicService) Analyze(ctx context.Context, briefID uuid.UUID, text string, keywords, attributes []string, projectID *uuid.UUID) (services.StrategicResult, error) {
	if s.err != nil {
		return services.StrategicResult{}, s.err
	}
	return services.StrategicResult{BriefID: briefID}, nil
}

func TestParseDocumentZeroByteFile(t *testing.T) {
	r := gin.New()
	h := NewBriefHandler(logger.Nop(), stubBriefingService{})
	r.POST("/parse-document", h.ParseDocument)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "empty.txt")
	if err != nil {
		t.Fatal(err)
	}
	_, _ = fw.Write(nil)
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/parse-document", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["filename"] != "empty.txt" {
		t.Fatalf("unexpected filename %v", resp["filename"])
	}
	if resp["total_words"].(float64) != 0 {
		t.Fatalf("expected zero words, got %v", resp["total_words"])
	}
}

func TestParseDocumentMissingFile(t *testing.T) {
	r := gin.New()
	h := NewBriefHandler(logger.Nop(), stubBriefingService{})
	r.POST("/parse-document", h.ParseDocument)

	req := httptest.NewRequest(http.MethodPost, "/parse-document", strings.NewReader(""))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestStrategicAnalysisPreconditionMapsTo409(t *testing.T) {
	r := gin.New()
	h := NewStrategicHandler(logger.Nop(), stubStrategicService{err: errors.ErrPreconditionFailed})
	r.POST("/strategic-analysis", h.Analyze)

	payload := `{"brief_id":"` + uuid.New().String() + `","text":"brief text"}`
	req := httptest.NewRequest(http.MethodPost, "/strategic-analysis", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestStrategicAnalysisMissingFields(t *testing.T) {
	r := gin.New()
	h := NewStrategicHandler(logger.Nop(), stubStrategicService{})
	r.POST("/strategic-analysis", h.Analyze)

	req := httptest.NewRequest(http.MethodPost, "/strategic-analysis", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestUpdateBriefNotFoundMapsTo404(t *testing.T) {
	r := gin.New()
	h := NewBriefHandler(logger.Nop(), stubBriefingService{})
	r.PUT("/update-brief", h.UpdateBrief)

	payload := `{"brief_id":"` + uuid.New().String() + `","keywords":["a"]}`
	req := httptest.NewRequest(http.MethodPut, "/update-brief", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
