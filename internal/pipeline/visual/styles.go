package visual

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/brandcopilot/brand-copilot/internal/pipeline/strategy"
	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
)

// Style buckets.
const (
	BucketContemporary = "contemporary"
	BucketTraditional  = "traditional"
	BucketCreative     = "creative"
)

type FontPair struct {
	Primary   string `yaml:"primary" json:"primary"`
	Secondary string `yaml:"secondary" json:"secondary"`
}

// StyleConfig holds the font-pair and palette tables the generator indexes
// into. The built-in defaults can be overridden with a YAML file pointed at
// by BRAND_STYLE_CONFIG_PATH.
type StyleConfig struct {
	FontPairs map[string][]FontPair `yaml:"font_pairs"`
	Palettes  map[string][][]string `yaml:"palettes"`
}

func defaultStyleConfig() StyleConfig {
	return StyleConfig{
		FontPairs: map[string][]FontPair{
			BucketContemporary: {
				{Primary: "Montserrat", Secondary: "Open Sans"},
				{Primary: "Poppins", Secondary: "Inter"},
				{Primary: "Raleway", Secondary: "Lato"},
			},
			BucketTraditional: {
				{Primary: "Playfair Display", Secondary: "Lato"},
				{Primary: "Merriweather", Secondary: "Open Sans"},
				{Primary: "Cormorant Garamond", Secondary: "Roboto"},
			},
			BucketCreative: {
				{Primary: "Bebas Neue", Secondary: "Roboto"},
				{Primary: "Abril Fatface", Secondary: "Nunito"},
				{Primary: "Lobster", Secondary: "Montserrat"},
			},
		},
		Palettes: map[string][][]string{
			"sustainable": {
				{"#2D5A27", "#8FBC8F", "#F4F1DE", "#81B29A", "#3D405B"},
				{"#344E41", "#588157", "#A3B18A", "#DAD7CD", "#FEFAE0"},
			},
			"modern": {
				{"#0B132B", "#1C2541", "#3A506B", "#5BC0BE", "#FFFFFF"},
				{"#22223B", "#4A4E69", "#9A8C98", "#C9ADA7", "#F2E9E4"},
			},
			"premium": {
				{"#1A1A2E", "#C9B037", "#F5F5F5", "#4A4E69", "#0F0F0F"},
				{"#2B2D42", "#BFA181", "#EDF2F4", "#8D99AE", "#11151C"},
			},
			"default": {
				{"#264653", "#2A9D8F", "#E9C46A", "#F4A261", "#E76F51"},
				{"#22333B", "#5E503F", "#C6AC8F", "#EAE0D5", "#0A0908"},
			},
		},
	}
}

// LoadStyleConfig returns the defaults merged with the optional YAML
// override. A broken override file is logged and ignored.
func LoadStyleConfig(log *logger.Logger) StyleConfig {
	cfg := defaultStyleConfig()

	path := strings.TrimSpace(os.Getenv("BRAND_STYLE_CONFIG_PATH"))
	if path == "" {
		return cfg
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("style config unreadable, using defaults", "path", path, "error", err)
		return cfg
	}

	var override StyleConfig
	if err := yaml.Unmarshal(data, &override); err != nil {
		log.Warn("style config invalid YAML, using defaults", "path", path, "error", err)
		return cfg
	}

	for bucket, pairs := range override.FontPairs {
		if len(pairs) > 0 {
			cfg.FontPairs[bucket] = pairs
		}
	}
	for key, palettes := range override.Palettes {
		if len(palettes) > 0 {
			cfg.Palettes[key] = palettes
		}
	}
	return cfg
}

// SelectBucket maps the traditional/contemporary and corporate/creative
// sliders onto one of the three style buckets.
func SelectBucket(prefs map[string]int) string {
	tc, ok := prefs[strategy.AxisTraditionalContemporary]
	if !ok {
		tc = 50
	}
	cc, ok := prefs[strategy.AxisCorporateCreative]
	if !ok {
		cc = 50
	}

	switch {
	case tc > 70:
		return BucketContemporary
	case tc < 30:
		return BucketTraditional
	case cc > 60:
		return BucketCreative
	default:
		return BucketContemporary
	}
}

// paletteKey picks the first palette family triggered by the attributes.
func paletteKey(attributes []string) string {
	for _, key := range []string{"sustainable", "modern", "premium"} {
		for _, attr := range attributes {
			if strings.EqualFold(strings.TrimSpace(attr), key) {
				return key
			}
		}
	}
	return "default"
}

func bucketCharacter(bucket string) string {
	switch bucket {
	case BucketTraditional:
		return "traditional design with established visual cues"
	case BucketCreative:
		return "creative design with expressive forms"
	default:
		return "contemporary design with clean lines"
	}
}
