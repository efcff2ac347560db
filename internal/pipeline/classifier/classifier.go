package classifier

import (
	"regexp"
	"sort"
	"strings"

	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
)

const (
	minParagraphLen = 50
	maxSections     = 8

	regexScore   = 0.2
	keywordBonus = 0.3
)

type Section struct {
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	Confidence float64 `json:"confidence"`
	Category   string  `json:"category"`
}

type category struct {
	name     string
	title    string
	weight   float64
	patterns []*regexp.Regexp
	keywords []string
}

// Declaration order breaks score ties.
var categories = []category{
	{
		name:   "company_info",
		title:  "Company Information",
		weight: 0.20,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(empresa|companhia|company|negócio|business)\b`),
			regexp.MustCompile(`(?i)\b(fundad[ao]|founded|criad[ao] em|established)\b`),
			regexp.MustCompile(`(?i)\b(somos|we are|nossa história|our story)\b`),
		},
		keywords: []string{"empresa", "startup", "company", "marca", "brand"},
	},
	{
		name:   "target_audience",
		title:  "Target Audience",
		weight: 0.25,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(público[- ]alvo|target audience|audiência|consumidor)\b`),
			regexp.MustCompile(`(?i)\b(geração [xyz]|gen [xyz]|millennials|jovens)\b`),
			regexp.MustCompile(`(?i)\b(clientes?|customers?|usuários?|users?)\b`),
		},
		keywords: []string{"público", "audience", "clientes", "consumidores", "demografia"},
	},
	{
		name:   "objectives",
		title:  "Objectives",
		weight: 0.25,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(objetivos?|goals?|metas?|objectives?)\b`),
			regexp.MustCompile(`(?i)\b(queremos|we want|buscamos|pretendemos|aim to)\b`),
			regexp.MustCompile(`(?i)\b(missão|mission|visão|vision)\b`),
		},
		keywords: []string{"objetivo", "meta", "goal", "missão", "crescer"},
	},
	{
		name:   "brand_personality",
		title:  "Brand Personality",
		weight: 0.15,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(personalidade|personality|tom de voz|tone of voice)\b`),
			regexp.MustCompile(`(?i)\b(modern[ao]?|inovador[a]?|criativ[ao]|divertid[ao])\b`),
			regexp.MustCompile(`(?i)\b(estilo|style|identidade|identity)\b`),
		},
		keywords: []string{"personalidade", "estilo", "moderno", "criativo", "tom"},
	},
	{
		name:   "values",
		title:  "Values",
		weight: 0.15,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(valores?|values?|princípios?|principles?)\b`),
			regexp.MustCompile(`(?i)\b(sustentab|sustainab|ética|ethics|transparência|transparency)`),
			regexp.MustCompile(`(?i)\b(qualidade|quality|responsabilidade|responsibility)\b`),
		},
		keywords: []string{"valores", "sustentabilidade", "qualidade", "ética", "transparência"},
	},
}

const unknownCategoryWeight = 0.10

// Classifier splits extracted briefing text into labeled sections.
type Classifier struct {
	log *logger.Logger
}

func New(log *logger.Logger) *Classifier {
	return &Classifier{log: log.With("component", "SectionClassifier")}
}

// Classify scores every paragraph of at least 50 characters against the five
// fixed categories and returns the top 8 sections, best match first.
func (c *Classifier) Classify(text string) []Section {
	sections := make([]Section, 0, maxSections)

	for _, raw := range strings.Split(text, "\n") {
		paragraph := strings.TrimSpace(raw)
		if len(paragraph) < minParagraphLen {
			continue
		}
		sections = append(sections, scoreParagraph(paragraph))
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Confidence > sections[j].Confidence
	})
	if len(sections) > maxSections {
		sections = sections[:maxSections]
	}
	return sections
}

func scoreParagraph(paragraph string) Section {
	lower := strings.ToLower(paragraph)

	best := Section{
		Title:      "Additional Content",
		Content:    paragraph,
		Confidence: 0,
		Category:   "other",
	}

	for _, cat := range categories {
		score := 0.0
		for _, re := range cat.patterns {
			if re.MatchString(paragraph) {
				score += regexScore
			}
		}
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				score += keywordBonus
				break
			}
		}
		if score > 1 {
			score = 1
		}
		// Strictly greater keeps declaration order for ties.
		if score > best.Confidence {
			best = Section{
				Title:      cat.title,
				Content:    paragraph,
				Confidence: score,
				Category:   cat.name,
			}
		}
	}
	return best
}

// OverallConfidence aggregates section confidences using fixed per-category
// weights; sections with unrecognized categories weigh 0.10. Empty input
// yields 0.
func OverallConfidence(sections []Section) float64 {
	if len(sections) == 0 {
		return 0.0
	}

	weightByCategory := make(map[string]float64, len(categories))
	for _, cat := range categories {
		weightByCategory[cat.name] = cat.weight
	}

	var weighted, total float64
	for _, s := range sections {
		w, ok := weightByCategory[s.Category]
		if !ok {
			w = unknownCategoryWeight
		}
		weighted += s.Confidence * w
		total += w
	}
	if total == 0 {
		var sum float64
		for _, s := range sections {
			sum += s.Confidence
		}
		return sum / float64(len(sections))
	}
	result := weighted / total
	if result < 0 {
		return 0
	}
	if result > 1 {
		return 1
	}
	return result
}
