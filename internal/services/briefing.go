package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brandcopilot/brand-copilot/internal/data/repos"
	types "github.com/brandcopilot/brand-copilot/internal/domain"
	"github.com/brandcopilot/brand-copilot/internal/pipeline/analyzer"
	"github.com/brandcopilot/brand-copilot/internal/pipeline/classifier"
	"github.com/brandcopilot/brand-copilot/internal/pipeline/extractor"
	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
)

// BriefAnalysis is the analyze-brief phase result. BriefID stays nil when
// the best-effort insert failed.
type BriefAnalysis struct {
	BriefID    *uuid.UUID `json:"brief_id,omitempty"`
	ProjectID  *uuid.UUID `json:"project_id,omitempty"`
	Keywords   []string   `json:"keywords"`
	Attributes []string   `json:"attributes"`
	Sentiment  string     `json:"sentiment"`
}

// DocumentParse is the parse-document result.
type DocumentParse struct {
	Filename          string               `json:"filename"`
	Sections          []classifier.Section `json:"sections"`
	OverallConfidence float64              `json:"overall_confidence"`
	TotalWords        int                  `json:"total_words"`
	ProcessedAt       time.Time            `json:"processed_at"`
}

type BriefingService interface {
	AnalyzeBrief(ctx context.Context, text string, projectID *uuid.UUID) (BriefAnalysis, error)
	UpdateBrief(ctx context.Context, briefID uuid.UUID, keywords, attributes []string) error
	ListBriefs(ctx context.Context, projectID uuid.UUID) ([]*types.Brief, error)
	ParseDocument(ctx context.Context, filename, mimeType string, data []byte) (DocumentParse, error)
}

type briefingService struct {
	db         *gorm.DB
	log        *logger.Logger
	briefRepo  repos.BriefRepo
	guard      workflowGuard
	extractor  *extractor.Extractor
	classifier *classifier.Classifier
	analyzer   *analyzer.Analyzer
}

func NewBriefingService(
	db *gorm.DB,
	log *logger.Logger,
	briefRepo repos.BriefRepo,
	projectRepo repos.ProjectRepo,
	ext *extractor.Extractor,
	cls *classifier.Classifier,
	anl *analyzer.Analyzer,
) BriefingService {
	serviceLog := log.With("service", "BriefingService")
	return &briefingService{
		db:         db,
		log:        serviceLog,
		briefRepo:  briefRepo,
		guard:      workflowGuard{log: serviceLog, projectRepo: projectRepo},
		extractor:  ext,
		classifier: cls,
		analyzer:   anl,
	}
}

func (s *briefingService) AnalyzeBrief(ctx context.Context, text string, projectID *uuid.UUID) (BriefAnalysis, error) {
	project, err := s.guard.require(ctx, projectID, types.StateCreated)
	if err != nil {
		return BriefAnalysis{}, err
	}

	analysis := s.analyzer.Analyze(text)
	result := BriefAnalysis{
		ProjectID:  projectID,
		Keywords:   analysis.Keywords,
		Attributes: analysis.Attributes,
		Sentiment:  analysis.Sentiment,
	}

	keywordsJSON, _ := json.Marshal(analysis.Keywords)
	attributesJSON, _ := json.Marshal(analysis.Attributes)
	brief := &types.Brief{
		ProjectID:  projectID,
		RawText:    text,
		Keywords:   keywordsJSON,
		Attributes: attributesJSON,
		Sentiment:  analysis.Sentiment,
	}
	if created, err := s.briefRepo.Create(ctx, nil, brief); err != nil {
		s.log.Error("brief insert failed, returning analysis without id", "error", err)
	} else {
		result.BriefID = &created.ID
	}

	s.guard.advance(ctx, project, types.StateBriefAnalyzed)
	return result, nil
}

func (s *briefingService) UpdateBrief(ctx context.Context, briefID uuid.UUID, keywords, attributes []string) error {
	keywordsJSON, _ := json.Marshal(keywords)
	attributesJSON, _ := json.Marshal(attributes)
	return s.briefRepo.UpdateExtraction(ctx, nil, briefID, keywordsJSON, attributesJSON)
}

func (s *briefingService) ListBriefs(ctx context.Context, projectID uuid.UUID) ([]*types.Brief, error) {
	return s.briefRepo.GetByProjectID(ctx, nil, projectID)
}

func (s *briefingService) ParseDocument(ctx context.Context, filename, mimeType string, data []byte) (DocumentParse, error) {
	text := s.extractor.Extract(filename, mimeType, data)
	sections := s.classifier.Classify(text)

	return DocumentParse{
		Filename:          filename,
		Sections:          sections,
		OverallConfidence: classifier.OverallConfidence(sections),
		TotalWords:        len(strings.Fields(text)),
		ProcessedAt:       time.Now().UTC(),
	}, nil
}
