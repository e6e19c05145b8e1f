package advice

import "strings"

const (
	AdviceHeading         = "Gardening Advice:"
	RecommendationHeading = "Plant Recommendations:"
)

// Report is the resolved output for one season and plant type.
type Report struct {
	Season          Season
	PlantType       PlantType
	Advice          string
	Recommendations string
}

// NewReport resolves both tables for the given selection.
func NewReport(season Season, plantType PlantType) Report {
	return Report{
		Season:          season,
		PlantType:       plantType,
		Advice:          GenerateAdvice(string(season), string(plantType)),
		Recommendations: RecommendPlants(string(season)),
	}
}

// String renders the two labeled sections, each preceded by a blank line.
func (r Report) String() string {
	var b strings.Builder
	b.WriteString("\n" + AdviceHeading + "\n")
	b.WriteString(r.Advice + "\n")
	b.WriteString("\n" + RecommendationHeading + "\n")
	b.WriteString(r.Recommendations + "\n")
	return b.String()
}
