package strategy

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/brandcopilot/brand-copilot/internal/cache"
	"github.com/brandcopilot/brand-copilot/internal/clients/openai"
	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
)

// Creative-tension axis keys. Scores run 0 (left pole) to 100 (right pole).
const (
	AxisTraditionalContemporary = "traditional_contemporary"
	AxisCorporateCreative       = "corporate_creative"
	AxisMinimalDetailed         = "minimal_detailed"
	AxisSeriousPlayful          = "serious_playful"
)

const (
	maxValues    = 5
	maxTraits    = 6
	axisBase     = 50
	axisStep     = 20
	purposeLimit = 200
)

// Analysis is the strategic read of a brief used by the visual stages.
type Analysis struct {
	Purpose           string         `json:"purpose"`
	Values            []string       `json:"values"`
	PersonalityTraits []string       `json:"personality_traits"`
	CreativeTensions  map[string]int `json:"creative_tensions"`
}

var intentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(nosso objetivo é|nossa meta é|our goal is)[^.\n]*`),
	regexp.MustCompile(`(?i)(a empresa|the company)[^.\n]*?(busca|quer|deseja|seeks|wants)[^.\n]*`),
	regexp.MustCompile(`(?i)(a marca|the brand)[^.\n]*?(representa|significa|represents|means)[^.\n]*`),
}

type valueWord struct {
	canonical string
	triggers  []string
}

var valueWords = []valueWord{
	{"sustainability", []string{"sustainability", "sustentabilidade", "sustainable", "sustentável"}},
	{"quality", []string{"quality", "qualidade"}},
	{"innovation", []string{"innovation", "inovação", "innovative", "inovador"}},
	{"transparency", []string{"transparency", "transparência"}},
	{"authenticity", []string{"authenticity", "autenticidade", "authentic", "autêntico"}},
	{"community", []string{"community", "comunidade"}},
	{"excellence", []string{"excellence", "excelência"}},
	{"integrity", []string{"integrity", "integridade"}},
	{"trust", []string{"trust", "confiança", "trustworthy", "confiável"}},
	{"accessibility", []string{"accessibility", "acessibilidade", "accessible", "acessível"}},
	{"creativity", []string{"creativity", "criatividade", "creative", "criativo"}},
	{"responsibility", []string{"responsibility", "responsabilidade"}},
	{"tradition", []string{"tradition", "tradição", "traditional", "tradicional"}},
	{"passion", []string{"passion", "paixão"}},
	{"simplicity", []string{"simplicity", "simplicidade", "minimalist", "minimalista"}},
}

var traitLookup = map[string][]string{
	"modern":        {"innovative", "contemporary", "dynamic"},
	"minimalist":    {"clean", "precise", "focused"},
	"earthy":        {"grounded", "natural", "warm"},
	"accessible":    {"approachable", "open", "practical"},
	"premium":       {"sophisticated", "exclusive", "refined"},
	"sustainable":   {"conscious", "responsible", "authentic"},
	"vibrant":       {"bold", "expressive", "lively"},
	"traditional":   {"reliable", "established", "timeless"},
	"playful":       {"fun", "energetic", "spontaneous"},
	"professional":  {"credible", "structured", "dependable"},
	"elegant":       {"graceful", "polished", "discreet"},
	"innovative":    {"visionary", "experimental", "inventive"},
	"friendly":      {"welcoming", "warm", "personable"},
	"tech":          {"smart", "efficient", "forward-looking"},
	"creative":      {"imaginative", "original", "expressive"},
	"sophisticated": {"cultured", "elevated", "composed"},
}

type axis struct {
	name  string
	left  []string
	right []string
}

var axes = []axis{
	{
		name:  AxisTraditionalContemporary,
		left:  []string{"traditional", "classic", "heritage", "timeless", "earthy"},
		right: []string{"modern", "contemporary", "futuristic", "innovative", "tech"},
	},
	{
		name:  AxisCorporateCreative,
		left:  []string{"professional", "corporate", "formal", "trustworthy"},
		right: []string{"creative", "artistic", "playful", "vibrant", "bold"},
	},
	{
		name:  AxisMinimalDetailed,
		left:  []string{"minimalist", "minimal", "clean", "simple"},
		right: []string{"detailed", "ornate", "elaborate", "luxury", "rich"},
	},
	{
		name:  AxisSeriousPlayful,
		left:  []string{"serious", "professional", "formal", "premium"},
		right: []string{"playful", "fun", "youthful", "friendly"},
	},
}

// Synthesizer turns a brief plus its extracted signals into a strategic
// analysis. The hosted model is preferred; the local heuristic always works.
type Synthesizer struct {
	log   *logger.Logger
	ai    openai.Client
	cache cache.Cache
}

// New accepts a nil client and a nil cache; both only disable the hosted
// path and memoization respectively.
func New(log *logger.Logger, ai openai.Client, c cache.Cache) *Synthesizer {
	return &Synthesizer{
		log:   log.With("component", "StrategicSynthesizer"),
		ai:    ai,
		cache: c,
	}
}

// Synthesize never returns an error; any failure degrades to the local
// heuristic and, past that, to a safe default.
func (s *Synthesizer) Synthesize(ctx context.Context, text string, keywords, attributes []string) (out Analysis) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("strategic synthesis panicked", "panic", r)
			out = defaultAnalysis()
		}
	}()

	cacheKey := cache.Key("strategic_analysis", text, strings.Join(keywords, ","), strings.Join(attributes, ","))
	if s.cache != nil {
		if raw, ok := s.cache.Get(ctx, cacheKey); ok {
			var cached Analysis
			if err := json.Unmarshal(raw, &cached); err == nil && cached.CreativeTensions != nil {
				return cached
			}
		}
	}

	if s.ai != nil {
		if hosted, err := s.synthesizeHosted(ctx, text, keywords, attributes); err == nil {
			s.store(ctx, cacheKey, hosted)
			return hosted
		} else {
			s.log.Warn("hosted synthesis failed, using local heuristic", "error", err)
		}
	}

	local := SynthesizeLocal(text, keywords, attributes)
	// Cache the local result only when it is the terminal path. After a
	// transient hosted failure the next call should retry the hosted model
	// instead of serving the degraded result for the full TTL.
	if s.ai == nil {
		s.store(ctx, cacheKey, local)
	}
	return local
}

func (s *Synthesizer) store(ctx context.Context, key string, a Analysis) {
	if s.cache == nil {
		return
	}
	if raw, err := json.Marshal(a); err == nil {
		s.cache.Set(ctx, key, raw)
	}
}

// SynthesizeLocal is the deterministic heuristic path.
func SynthesizeLocal(text string, keywords, attributes []string) Analysis {
	return Analysis{
		Purpose:           derivePurpose(text, keywords, attributes),
		Values:            deriveValues(text, attributes),
		PersonalityTraits: deriveTraits(attributes),
		CreativeTensions:  deriveTensions(attributes),
	}
}

func derivePurpose(text string, keywords, attributes []string) string {
	for _, re := range intentPatterns {
		if m := re.FindString(text); m != "" {
			return truncate(strings.TrimSpace(m), purposeLimit)
		}
	}

	top := keywords
	if len(top) > 3 {
		top = top[:3]
	}
	for _, sentence := range splitSentences(text) {
		lower := strings.ToLower(sentence)
		for _, kw := range top {
			if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
				return truncate(strings.TrimSpace(sentence), purposeLimit)
			}
		}
	}

	attrPart := joinOr(attributes, 2, "distinctive")
	kwPart := joinOr(keywords, 2, "its audience")
	return fmt.Sprintf("Develop a %s brand that connects with %s", attrPart, kwPart)
}

func deriveValues(text string, attributes []string) []string {
	lowerText := strings.ToLower(text)
	attrSet := make(map[string]struct{}, len(attributes))
	for _, a := range attributes {
		attrSet[strings.ToLower(a)] = struct{}{}
	}

	values := make([]string, 0, maxValues)
	seen := make(map[string]struct{})
	add := func(v string) {
		if _, ok := seen[v]; ok || len(values) == maxValues {
			return
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}

	for _, vw := range valueWords {
		for _, trigger := range vw.triggers {
			if _, ok := attrSet[trigger]; ok {
				add(vw.canonical)
				break
			}
		}
	}
	for _, vw := range valueWords {
		for _, trigger := range vw.triggers {
			if strings.Contains(lowerText, trigger) {
				add(vw.canonical)
				break
			}
		}
	}
	return values
}

func deriveTraits(attributes []string) []string {
	traits := make([]string, 0, maxTraits)
	seen := make(map[string]struct{})
	for _, attr := range attributes {
		for _, trait := range traitLookup[strings.ToLower(attr)] {
			if _, ok := seen[trait]; ok {
				continue
			}
			seen[trait] = struct{}{}
			traits = append(traits, trait)
			if len(traits) == maxTraits {
				return traits
			}
		}
	}
	return traits
}

func deriveTensions(attributes []string) map[string]int {
	tensions := make(map[string]int, len(axes))
	for _, ax := range axes {
		var left, right int
		for _, attr := range attributes {
			lower := strings.ToLower(attr)
			if containsString(ax.left, lower) {
				left++
			}
			if containsString(ax.right, lower) {
				right++
			}
		}
		tensions[ax.name] = clamp(axisBase+axisStep*right-axisStep*left, 0, 100)
	}
	return tensions
}

func defaultAnalysis() Analysis {
	return Analysis{
		Purpose:           "Build a consistent and memorable brand identity",
		Values:            []string{"quality"},
		PersonalityTraits: []string{"credible"},
		CreativeTensions: map[string]int{
			AxisTraditionalContemporary: axisBase,
			AxisCorporateCreative:       axisBase,
			AxisMinimalDetailed:         axisBase,
			AxisSeriousPlayful:          axisBase,
		},
	}
}

// -------------------- hosted path --------------------

const hostedSystemPrompt = "You are a senior brand strategist. Derive a concise strategic analysis from the briefing. Respond only with the requested JSON."

func hostedSchema() map[string]any {
	intAxis := map[string]any{"type": "integer", "minimum": 0, "maximum": 100}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"purpose": map[string]any{"type": "string"},
			"values": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"personality_traits": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"creative_tensions": map[string]any{
				"type": "object",
				"properties": map[string]any{
					AxisTraditionalContemporary: intAxis,
					AxisCorporateCreative:       intAxis,
					AxisMinimalDetailed:         intAxis,
					AxisSeriousPlayful:          intAxis,
				},
				"required": []string{
					AxisTraditionalContemporary,
					AxisCorporateCreative,
					AxisMinimalDetailed,
					AxisSeriousPlayful,
				},
				"additionalProperties": false,
			},
		},
		"required":             []string{"purpose", "values", "personality_traits", "creative_tensions"},
		"additionalProperties": false,
	}
}

func (s *Synthesizer) synthesizeHosted(ctx context.Context, text string, keywords, attributes []string) (Analysis, error) {
	user := fmt.Sprintf(
		"Briefing:\n%s\n\nKeywords: %s\nBrand attributes: %s\n\nReturn purpose (one sentence), up to 5 values, up to 6 personality traits, and the four creative tension scores.",
		truncate(text, 4000),
		strings.Join(keywords, ", "),
		strings.Join(attributes, ", "),
	)

	obj, err := s.ai.GenerateJSON(ctx, hostedSystemPrompt, user, "strategic_analysis", hostedSchema())
	if err != nil {
		return Analysis{}, err
	}
	return parseHosted(obj)
}

func parseHosted(obj map[string]any) (Analysis, error) {
	purpose, _ := obj["purpose"].(string)
	if strings.TrimSpace(purpose) == "" {
		return Analysis{}, fmt.Errorf("hosted analysis missing purpose")
	}

	tensionsRaw, ok := obj["creative_tensions"].(map[string]any)
	if !ok {
		return Analysis{}, fmt.Errorf("hosted analysis missing creative_tensions")
	}
	tensions := make(map[string]int, len(axes))
	for _, ax := range axes {
		v, ok := tensionsRaw[ax.name].(float64)
		if !ok {
			return Analysis{}, fmt.Errorf("hosted analysis missing axis %s", ax.name)
		}
		tensions[ax.name] = clamp(int(v), 0, 100)
	}

	return Analysis{
		Purpose:           truncate(strings.TrimSpace(purpose), purposeLimit),
		Values:            stringSlice(obj["values"], maxValues),
		PersonalityTraits: stringSlice(obj["personality_traits"], maxTraits),
		CreativeTensions:  tensions,
	}, nil
}

// -------------------- helpers --------------------

func stringSlice(v any, limit int) []string {
	out := make([]string, 0, limit)
	items, ok := v.([]any)
	if !ok {
		return out
	}
	for _, item := range items {
		s, ok := item.(string)
		if !ok || strings.TrimSpace(s) == "" {
			continue
		}
		out = append(out, strings.TrimSpace(s))
		if len(out) == limit {
			break
		}
	}
	return out
}

func splitSentences(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '\n' || r == '!' || r == '?'
	})
}

func joinOr(items []string, limit int, fallback string) string {
	kept := make([]string, 0, limit)
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		kept = append(kept, item)
		if len(kept) == limit {
			break
		}
	}
	if len(kept) == 0 {
		return fallback
	}
	return strings.Join(kept, " and ")
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
