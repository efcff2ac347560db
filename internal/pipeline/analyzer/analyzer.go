package analyzer

import (
	"strings"
	"unicode"

	rake "github.com/afjoseph/RAKE.Go"

	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
)

const (
	maxKeywords       = 8
	maxPhraseWords    = 3
	maxAttributes     = 6
	sentimentWindow   = 512
	fallbackTokenSize = 3
)

// Analysis is the analyzer's verdict on one briefing text.
type Analysis struct {
	Keywords   []string `json:"keywords"`
	Attributes []string `json:"attributes"`
	Sentiment  string   `json:"sentiment"`
}

type attribute struct {
	label    string
	triggers []string
}

// Fixed brand-attribute taxonomy. Triggers include Portuguese forms since
// most briefings arrive in pt-BR.
var taxonomy = []attribute{
	{"modern", []string{"modern", "moderno", "moderna", "contemporâneo", "atual"}},
	{"minimalist", []string{"minimalist", "minimalista", "clean", "simples"}},
	{"earthy", []string{"earthy", "terreno", "orgânico", "organic", "rústico"}},
	{"accessible", []string{"accessible", "acessível", "affordable", "inclusivo"}},
	{"premium", []string{"premium", "luxo", "exclusivo", "high-end", "sofisticação"}},
	{"sustainable", []string{"sustainable", "sustentável", "sustentabilidade", "eco", "verde"}},
	{"vibrant", []string{"vibrant", "vibrante", "colorido", "colorful"}},
	{"traditional", []string{"traditional", "tradicional", "clássico", "classic", "heritage"}},
	{"playful", []string{"playful", "divertido", "divertida", "lúdico", "fun"}},
	{"professional", []string{"professional", "profissional", "corporativo", "corporate"}},
	{"bold", []string{"bold", "ousado", "ousada", "arrojado", "impactante"}},
	{"elegant", []string{"elegant", "elegante", "refinado", "refined"}},
	{"innovative", []string{"innovative", "inovador", "inovadora", "inovação", "innovation"}},
	{"friendly", []string{"friendly", "amigável", "acolhedor", "próximo", "welcoming"}},
	{"luxury", []string{"luxury", "luxuoso", "luxuosa", "opulento"}},
	{"natural", []string{"natural", "naturais", "nature", "natureza"}},
	{"tech", []string{"tech", "tecnologia", "tecnológico", "digital"}},
	{"creative", []string{"creative", "criativo", "criativa", "criatividade"}},
	{"trustworthy", []string{"trustworthy", "confiável", "confiança", "trust"}},
	{"energetic", []string{"energetic", "energético", "energia", "dinâmico", "dynamic"}},
	{"calm", []string{"calm", "calmo", "calma", "tranquilo", "sereno"}},
	{"youthful", []string{"youthful", "jovem", "jovial", "young"}},
	{"sophisticated", []string{"sophisticated", "sofisticado", "sofisticada"}},
	{"authentic", []string{"authentic", "autêntico", "autêntica", "genuíno"}},
}

var positiveWords = []string{
	"excelente", "ótimo", "sucesso", "qualidade", "paixão", "crescimento",
	"oportunidade", "inovação", "amor", "melhor",
	"excellent", "great", "success", "quality", "passion", "growth",
	"opportunity", "love", "best", "amazing",
}

var negativeWords = []string{
	"problema", "ruim", "difícil", "crise", "falha", "fraco", "risco",
	"problem", "bad", "difficult", "crisis", "failure", "weak", "risk",
}

var portugueseStopWords = []string{
	"a", "à", "ao", "aos", "as", "às", "até", "com", "como", "da", "das",
	"de", "dela", "dele", "do", "dos", "e", "é", "ela", "elas", "ele",
	"eles", "em", "entre", "era", "essa", "esse", "esta", "está", "estamos",
	"estão", "este", "eu", "foi", "for", "há", "isso", "isto", "já", "lhe",
	"mais", "mas", "me", "mesmo", "minha", "muito", "na", "não", "nas",
	"nem", "no", "nos", "nós", "o", "os", "ou", "para", "pela", "pelo",
	"pelos", "por", "qual", "quando", "que", "quem", "se", "sem", "ser",
	"seu", "sua", "suas", "são", "também", "te", "tem", "têm", "um", "uma",
	"você", "vocês",
}

// portugueseMarkers are high-frequency function words used to detect the
// briefing language before keyword extraction.
var portugueseMarkers = map[string]struct{}{
	"de": {}, "da": {}, "do": {}, "que": {}, "para": {}, "uma": {},
	"não": {}, "com": {}, "em": {}, "os": {}, "as": {}, "mais": {},
}

// Analyzer extracts keywords, brand attributes and a coarse sentiment label
// from briefing text.
type Analyzer struct {
	log *logger.Logger
}

func New(log *logger.Logger) *Analyzer {
	return &Analyzer{log: log.With("component", "BriefAnalyzer")}
}

// Analyze never fails; every branch degrades to a valid (possibly empty)
// Analysis.
func (a *Analyzer) Analyze(text string) Analysis {
	return Analysis{
		Keywords:   a.extractKeywords(text),
		Attributes: matchAttributes(text),
		Sentiment:  labelSentiment(text),
	}
}

func (a *Analyzer) extractKeywords(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	keywords := make([]string, 0, maxKeywords)
	func() {
		defer func() {
			if r := recover(); r != nil {
				a.log.Warn("keyword extractor panicked, using token fallback", "panic", r)
				keywords = keywords[:0]
			}
		}()
		for _, pair := range rake.RunRakeI18N(text, stopWordsFor(text)) {
			kw := strings.TrimSpace(pair.Key)
			if kw == "" || len(strings.Fields(kw)) > maxPhraseWords {
				continue
			}
			keywords = append(keywords, kw)
			if len(keywords) == maxKeywords {
				break
			}
		}
	}()

	if len(keywords) > 0 {
		return keywords
	}
	return fallbackTokens(text)
}

// stopWordsFor returns the stop-word list matching the briefing language.
// Portuguese briefings get the Portuguese list merged with the English
// default so loanwords stay filtered; nil selects the extractor's built-in
// English list.
func stopWordsFor(text string) []string {
	if !looksPortuguese(text) {
		return nil
	}
	merged := make([]string, 0, len(portugueseStopWords)+len(rake.StopWordsSlice))
	merged = append(merged, portugueseStopWords...)
	merged = append(merged, rake.StopWordsSlice...)
	return merged
}

func looksPortuguese(text string) bool {
	hits := 0
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		tok = strings.TrimFunc(tok, func(r rune) bool { return !unicode.IsLetter(r) })
		if _, ok := portugueseMarkers[tok]; ok {
			hits++
			if hits >= 2 {
				return true
			}
		}
	}
	return false
}

// fallbackTokens deduplicates lowercase alphabetic tokens of at least three
// characters and keeps the first eight.
func fallbackTokens(text string) []string {
	seen := make(map[string]struct{})
	tokens := make([]string, 0, maxKeywords)
	for _, tok := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	}) {
		if len([]rune(tok)) < fallbackTokenSize {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		tokens = append(tokens, tok)
		if len(tokens) == maxKeywords {
			break
		}
	}
	return tokens
}

func matchAttributes(text string) []string {
	lower := strings.ToLower(text)
	attrs := make([]string, 0, maxAttributes)
	for _, attr := range taxonomy {
		for _, trigger := range attr.triggers {
			if strings.Contains(lower, trigger) {
				attrs = append(attrs, attr.label)
				break
			}
		}
		if len(attrs) == maxAttributes {
			break
		}
	}
	return attrs
}

func labelSentiment(text string) string {
	lower := strings.ToLower(text)
	if len(lower) > sentimentWindow {
		lower = lower[:sentimentWindow]
	}

	var positive, negative int
	for _, w := range positiveWords {
		positive += strings.Count(lower, w)
	}
	for _, w := range negativeWords {
		negative += strings.Count(lower, w)
	}

	switch {
	case positive > negative:
		return "positive"
	case negative > positive:
		return "negative"
	default:
		return "neutral"
	}
}
