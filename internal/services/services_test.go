package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/brandcopilot/brand-copilot/internal/domain"
	"github.com/brandcopilot/brand-copilot/internal/pipeline/analyzer"
	"github.com/brandcopilot/brand-copilot/internal/pipeline/classifier"
	"github.com/brandcopilot/brand-copilot/internal/pipeline/extractor"
	"github.com/brandcopilot/brand-copilot/internal/pipeline/kit"
	"github.com/brandcopilot/brand-copilot/internal/pipeline/strategy"
	"github.com/brandcopilot/brand-copilot/internal/pipeline/visual"
	"github.com/brandcopilot/brand-copilot/internal/pkg/errors"
	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
)

type fakeProjectRepo struct {
	projects map[uuid.UUID]*types.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: map[uuid.UUID]*types.Project{}}
}

func (r *fakeProjectRepo) Create(ctx context.Context, tx *gorm.DB, p *types.Project) (*types.Project, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.WorkflowState == "" {
		p.WorkflowState = types.StateCreated
	}
	r.projects[p.ID] = p
	return p, nil
}

func (r *fakeProjectRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, errors.ErrNotFound
	}
	return p, nil
}

func (r *fakeProjectRepo) GetByOwnerID(ctx context.Context, tx *gorm.DB, ownerID string) ([]*types.Project, error) {
	var out []*types.Project
	for _, p := range r.projects {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) UpdateWorkflowState(ctx context.Context, tx *gorm.DB, id uuid.UUID, state string) error {
	p, ok := r.projects[id]
	if !ok {
		return errors.ErrNotFound
	}
	p.WorkflowState = state
	return nil
}

type fakeBriefRepo struct {
	briefs  map[uuid.UUID]*types.Brief
	failing bool
}

func newFakeBriefRepo() *fakeBriefRepo {
	return &fakeBriefRepo{briefs: map[uuid.UUID]*types.Brief{}}
}

func (r *fakeBriefRepo) Create(ctx context.Context, tx *gorm.DB, b *types.Brief) (*types.Brief, error) {
	if r.failing {
		return nil, fmt.Errorf("db unavailable")
	}
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	r.briefs[b.ID] = b
	return b, nil
}

func (r *fakeBriefRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Brief, error) {
	b, ok := r.briefs[id]
	if !ok {
		return nil, errors.ErrNotFound
	}
	return b, nil
}

func (r *fakeBriefRepo) GetByProjectID(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) ([]*types.Brief, error) {
	var out []*types.Brief
	for _, b := range r.briefs {
		if b.ProjectID != nil && *b.ProjectID == projectID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBriefRepo) UpdateExtraction(ctx context.Context, tx *gorm.DB, id uuid.UUID, keywords, attributes datatypes.JSON) error {
	b, ok := r.briefs[id]
	if !ok {
		return errors.ErrNotFound
	}
	b.Keywords = keywords
	b.Attributes = attributes
	return nil
}

type fakeAssetRepo struct {
	assets  map[uuid.UUID]*types.GeneratedAsset
	failing bool
}

func newFakeAssetRepo() *fakeAssetRepo {
	return &fakeAssetRepo{assets: map[uuid.UUID]*types.GeneratedAsset{}}
}

func (r *fakeAssetRepo) Create(ctx context.Context, tx *gorm.DB, a *types.GeneratedAsset) (*types.GeneratedAsset, error) {
	if r.failing {
		return nil, fmt.Errorf("db unavailable")
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.assets[a.ID] = a
	return a, nil
}

func (r *fakeAssetRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.GeneratedAsset, error) {
	a, ok := r.assets[id]
	if !ok {
		return nil, errors.ErrNotFound
	}
	return a, nil
}

func (r *fakeAssetRepo) GetByProjectID(ctx context.Context, tx *gorm.DB, projectID uuid.UUID, assetType string) ([]*types.GeneratedAsset, error) {
	var out []*types.GeneratedAsset
	for _, a := range r.assets {
		if a.ProjectID == nil || *a.ProjectID != projectID {
			continue
		}
		if assetType != "" && a.AssetType != assetType {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

type fakeAnalysisRepo struct {
	rows map[uuid.UUID]*types.StrategicAnalysis
}

func newFakeAnalysisRepo() *fakeAnalysisRepo {
	return &fakeAnalysisRepo{rows: map[uuid.UUID]*types.StrategicAnalysis{}}
}

func (r *fakeAnalysisRepo) Create(ctx context.Context, tx *gorm.DB, a *types.StrategicAnalysis) (*types.StrategicAnalysis, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.rows[a.ID] = a
	return a, nil
}

func (r *fakeAnalysisRepo) GetByBriefID(ctx context.Context, tx *gorm.DB, briefID uuid.UUID) ([]*types.StrategicAnalysis, error) {
	var out []*types.StrategicAnalysis
	for _, a := range r.rows {
		if a.BriefID == briefID {
			out = append(out, a)
		}
	}
	return out, nil
}

func newBriefingService(projects *fakeProjectRepo, briefs *fakeBriefRepo) BriefingService {
	log := logger.Nop()
	return NewBriefingService(nil, log, briefs, projects, extractor.New(log), classifier.New(log), analyzer.New(log))
}

func seedProject(t *testing.T, projects *fakeProjectRepo, state string) *types.Project {
	t.Helper()
	p, err := projects.Create(context.Background(), nil, &types.Project{Name: "p", WorkflowState: state})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestAnalyzeBriefAdvancesWorkflow(t *testing.T) {
	projects := newFakeProjectRepo()
	briefs := newFakeBriefRepo()
	svc := newBriefingService(projects, briefs)

	p := seedProject(t, projects, types.StateCreated)

	result, err := svc.AnalyzeBrief(context.Background(), "Somos um café sustentável para a geração Z com paixão por qualidade.", &p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if result.BriefID == nil {
		t.Fatal("expected persisted brief id")
	}
	if p.WorkflowState != types.StateBriefAnalyzed {
		t.Fatalf("expected state advanced, got %s", p.WorkflowState)
	}
}

func TestAnalyzeBriefUnknownProject(t *testing.T) {
	svc := newBriefingService(newFakeProjectRepo(), newFakeBriefRepo())

	id := uuid.New()
	if _, err := svc.AnalyzeBrief(context.Background(), "text", &id); !errors.Is(err, errors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAnalyzeBriefPersistFailureStillSucceeds(t *testing.T) {
	projects := newFakeProjectRepo()
	briefs := newFakeBriefRepo()
	briefs.failing = true
	svc := newBriefingService(projects, briefs)

	result, err := svc.AnalyzeBrief(context.Background(), "Marca moderna de tecnologia.", nil)
	if err != nil {
		t.Fatal(err)
	}
	if result.BriefID != nil {
		t.Fatal("expected nil brief id after failed insert")
	}
	if result.Sentiment == "" {
		t.Fatal("expected analysis despite persistence failure")
	}
}

func TestStrategicAnalysisRequiresBriefAnalyzed(t *testing.T) {
	projects := newFakeProjectRepo()
	svc := NewStrategicService(nil, logger.Nop(), newFakeAnalysisRepo(), projects, strategy.New(logger.Nop(), nil, nil))

	p := seedProject(t, projects, types.StateCreated)

	_, err := svc.Analyze(context.Background(), uuid.New(), "text", nil, nil, &p.ID)
	if !errors.Is(err, errors.ErrPreconditionFailed) {
		t.Fatalf("expected ErrPreconditionFailed, got %v", err)
	}
}

func TestStrategicAnalysisAdvances(t *testing.T) {
	projects := newFakeProjectRepo()
	svc := NewStrategicService(nil, logger.Nop(), newFakeAnalysisRepo(), projects, strategy.New(logger.Nop(), nil, nil))

	p := seedProject(t, projects, types.StateBriefAnalyzed)

	result, err := svc.Analyze(context.Background(), uuid.New(), "Nosso objetivo é crescer.", []string{"crescer"}, []string{"modern"}, &p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if result.AnalysisID == nil {
		t.Fatal("expected persisted analysis id")
	}
	if p.WorkflowState != types.StateStrategicallyAnalyzed {
		t.Fatalf("expected state advanced, got %s", p.WorkflowState)
	}
}

func TestGenerateConceptsRequiresStrategicState(t *testing.T) {
	projects := newFakeProjectRepo()
	svc := NewVisualService(nil, logger.Nop(), newFakeAssetRepo(), projects, visual.NewGenerator(logger.Nop(), nil, nil))

	p := seedProject(t, projects, types.StateBriefAnalyzed)

	_, err := svc.GenerateConcepts(context.Background(), uuid.New(), strategy.Analysis{}, nil, nil, nil, "Acme", &p.ID)
	if !errors.Is(err, errors.ErrPreconditionFailed) {
		t.Fatalf("expected ErrPreconditionFailed, got %v", err)
	}
}

func TestGenerateConceptsAdvancesAndReturnsThree(t *testing.T) {
	projects := newFakeProjectRepo()
	svc := NewVisualService(nil, logger.Nop(), newFakeAssetRepo(), projects, visual.NewGenerator(logger.Nop(), nil, nil))

	p := seedProject(t, projects, types.StateStrategicallyAnalyzed)

	result, err := svc.GenerateConcepts(context.Background(), uuid.New(), strategy.Analysis{}, nil, nil, nil, "Acme", &p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Concepts) != 3 {
		t.Fatalf("expected 3 concepts, got %d", len(result.Concepts))
	}
	if p.WorkflowState != types.StateConceptsGenerated {
		t.Fatalf("expected state advanced, got %s", p.WorkflowState)
	}
}

func TestGenerateGalaxyPersistsMetaphors(t *testing.T) {
	projects := newFakeProjectRepo()
	assets := newFakeAssetRepo()
	svc := NewVisualService(nil, logger.Nop(), assets, projects, visual.NewGenerator(logger.Nop(), nil, nil))

	p := seedProject(t, projects, types.StateCreated)

	result, err := svc.GenerateGalaxy(context.Background(), []string{"coffee"}, []string{"sustainable"}, nil, &p.ID, true)
	if err != nil {
		t.Fatal(err)
	}
	if !result.SavedToDatabase {
		t.Fatal("expected metaphors saved")
	}
	stored, _ := assets.GetByProjectID(context.Background(), nil, p.ID, types.AssetTypeVisualMetaphor)
	if len(stored) != len(result.Metaphors) {
		t.Fatalf("expected %d stored assets, got %d", len(result.Metaphors), len(stored))
	}
}

func TestGenerateGalaxyPersistFailureReported(t *testing.T) {
	assets := newFakeAssetRepo()
	assets.failing = true
	svc := NewVisualService(nil, logger.Nop(), assets, newFakeProjectRepo(), visual.NewGenerator(logger.Nop(), nil, nil))

	result, err := svc.GenerateGalaxy(context.Background(), []string{"coffee"}, nil, nil, nil, true)
	if err != nil {
		t.Fatal(err)
	}
	if result.SavedToDatabase {
		t.Fatal("expected saved_to_database=false after failed inserts")
	}
	if len(result.Metaphors) == 0 {
		t.Fatal("expected metaphors despite persistence failure")
	}
}

func TestFinalizeBrandKitFlow(t *testing.T) {
	projects := newFakeProjectRepo()
	assets := newFakeAssetRepo()
	svc := NewKitService(nil, logger.Nop(), assets, projects, kit.New(logger.Nop(), nil), nil)

	p := seedProject(t, projects, types.StateConceptsGenerated)

	concept := visual.Concept{
		ID:             "c1",
		LogoVariations: []string{"a", "b", "c", "d"},
		ColorPalette:   []string{"#111111", "#222222", "#333333", "#444444", "#555555"},
		Typography:     visual.Typography{Primary: "Montserrat", Secondary: "Open Sans"},
	}

	result, err := svc.FinalizeBrandKit(context.Background(), "Acme", concept, strategy.Analysis{Purpose: "p"}, nil, uuid.New(), p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if result.AssetID == nil || !result.DownloadReady {
		t.Fatal("expected persisted kit and download_ready")
	}
	if p.WorkflowState != types.StateFinalized {
		t.Fatalf("expected finalized, got %s", p.WorkflowState)
	}

	stored, err := svc.GetBrandKit(context.Background(), *result.AssetID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.AssetType != types.AssetTypeFinalBrandKit {
		t.Fatalf("unexpected asset type %s", stored.AssetType)
	}
}

func TestFinalizeBrandKitTooEarly(t *testing.T) {
	projects := newFakeProjectRepo()
	svc := NewKitService(nil, logger.Nop(), newFakeAssetRepo(), projects, kit.New(logger.Nop(), nil), nil)

	p := seedProject(t, projects, types.StateBriefAnalyzed)

	_, err := svc.FinalizeBrandKit(context.Background(), "Acme", visual.Concept{}, strategy.Analysis{}, nil, uuid.New(), p.ID)
	if !errors.Is(err, errors.ErrPreconditionFailed) {
		t.Fatalf("expected ErrPreconditionFailed, got %v", err)
	}
}

func TestGetBrandKitRejectsOtherAssetTypes(t *testing.T) {
	assets := newFakeAssetRepo()
	svc := NewKitService(nil, logger.Nop(), assets, newFakeProjectRepo(), kit.New(logger.Nop(), nil), nil)

	metaphor, err := assets.Create(context.Background(), nil, &types.GeneratedAsset{
		AssetType: types.AssetTypeVisualMetaphor,
		AssetData: datatypes.JSON(`{}`),
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.GetBrandKit(context.Background(), metaphor.ID); !errors.Is(err, errors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for non-kit asset, got %v", err)
	}
}

func TestBlendConceptsRequiresTwoImages(t *testing.T) {
	svc := NewImageryService(nil, logger.Nop(), newFakeAssetRepo(), nil)

	_, err := svc.BlendConcepts(context.Background(), []string{"one"}, "overlay", nil, nil)
	if !errors.Is(err, errors.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}
