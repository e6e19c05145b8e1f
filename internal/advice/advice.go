// internal/advice/advice.go
//
// Fixed lookup tables and the two resolver functions.
// Keys missing from a table resolve to a fixed fallback sentence.

package advice

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Season is one of the four calendar seasons used as a lookup key.
type Season string

const (
	Spring Season = "spring"
	Summer Season = "summer"
	Autumn Season = "autumn"
	Winter Season = "winter"
)

// PlantType is one of the four plant categories used as a lookup key.
type PlantType string

const (
	Flower    PlantType = "flower"
	Vegetable PlantType = "vegetable"
	Herb      PlantType = "herb"
	Tree      PlantType = "tree"
)

const (
	NoSeasonAdvice          = "No advice for this season."
	NoPlantAdvice           = "No advice for this type of plant."
	NoSeasonRecommendations = "No recommendations for this season."
)

var seasonOrder = []Season{Spring, Summer, Autumn, Winter}

var plantOrder = []PlantType{Flower, Vegetable, Herb, Tree}

var seasonAdvice = map[Season]string{
	Spring: "Prepare your garden with compost and plant early blooms.",
	Summer: "Water your plants regularly and provide some shade.",
	Autumn: "Prune dead branches and prepare for cooler weather.",
	Winter: "Protect your plants from frost with covers.",
}

var plantAdvice = map[PlantType]string{
	Flower:    "Use fertiliser to encourage blooms.",
	Vegetable: "Keep an eye out for pests!",
	Herb:      "Harvest regularly to promote growth.",
	Tree:      "Ensure adequate space and water for root expansion.",
}

var recommendations = map[Season]string{
	Spring: "Consider planting tulips, daffodils, or daisies.",
	Summer: "Try growing sunflowers or marigolds.",
	Autumn: "Consider chrysanthemums or pansies.",
	Winter: "Opt for indoor plants like peace lilies or snake plants.",
}

// Normalize trims surrounding whitespace and lowercases the value.
func Normalize(value string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(value))
}

// GenerateAdvice returns the seasonal-care sentence followed by the
// plant-care sentence, separated by a newline.
func GenerateAdvice(season, plantType string) string {
	seasonText, ok := seasonAdvice[Season(season)]
	if !ok {
		seasonText = NoSeasonAdvice
	}
	plantText, ok := plantAdvice[PlantType(plantType)]
	if !ok {
		plantText = NoPlantAdvice
	}
	return seasonText + "\n" + plantText
}

// RecommendPlants names plants that suit the given season.
func RecommendPlants(season string) string {
	if text, ok := recommendations[Season(season)]; ok {
		return text
	}
	return NoSeasonRecommendations
}

// ParseSeason normalizes value and reports whether it names a known season.
func ParseSeason(value string) (Season, bool) {
	s := Season(Normalize(value))
	_, ok := seasonAdvice[s]
	return s, ok
}

// ParsePlantType normalizes value and reports whether it names a known plant type.
func ParsePlantType(value string) (PlantType, bool) {
	p := PlantType(Normalize(value))
	_, ok := plantAdvice[p]
	return p, ok
}

// Seasons returns the accepted seasons in calendar order.
func Seasons() []Season {
	return append([]Season(nil), seasonOrder...)
}

// PlantTypes returns the accepted plant types in display order.
func PlantTypes() []PlantType {
	return append([]PlantType(nil), plantOrder...)
}

// SeasonNames returns Seasons as plain strings for prompting.
func SeasonNames() []string {
	names := make([]string, len(seasonOrder))
	for i, s := range seasonOrder {
		names[i] = string(s)
	}
	return names
}

// PlantTypeNames returns PlantTypes as plain strings for prompting.
func PlantTypeNames() []string {
	names := make([]string, len(plantOrder))
	for i, p := range plantOrder {
		names[i] = string(p)
	}
	return names
}

// Title returns the season with its first letter capitalised, for menus.
func (s Season) Title() string {
	return titleCase(string(s))
}

// Title returns the plant type with its first letter capitalised, for menus.
func (p PlantType) Title() string {
	return titleCase(string(p))
}

func titleCase(value string) string {
	if value == "" {
		return value
	}
	return strings.ToUpper(value[:1]) + value[1:]
}
