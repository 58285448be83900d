package scoring

import "fmt"

// SurveyAnswers holds the five fixed survey responses, each 1 (worst) to
// 5 (best).
type SurveyAnswers struct {
	Stress          int `json:"stress"`
	Satisfaction    int `json:"satisfaction"`
	Motivation      int `json:"motivation"`
	WorkLifeBalance int `json:"workLifeBalance"`
	TeamSupport     int `json:"teamSupport"`
}

type SurveyResult struct {
	Composite int    `json:"composite"`
	Label     string `json:"label"`
}

// ScoreSurvey sums the five answers into a 5-25 composite and buckets it:
// Happy >= 20, Neutral >= 13, otherwise Stressed. Out-of-range answers are
// rejected, never clamped.
func ScoreSurvey(answers SurveyAnswers) (SurveyResult, error) {
	fields := []struct {
		name  string
		value int
	}{
		{"stress", answers.Stress},
		{"satisfaction", answers.Satisfaction},
		{"motivation", answers.Motivation},
		{"workLifeBalance", answers.WorkLifeBalance},
		{"teamSupport", answers.TeamSupport},
	}

	composite := 0
	for _, field := range fields {
		if field.value < answerMin || field.value > answerMax {
			return SurveyResult{}, &ValidationError{
				Entity: "survey",
				Reason: fmt.Sprintf("%s must be between %d and %d", field.name, answerMin, answerMax),
			}
		}
		composite += field.value
	}

	return SurveyResult{Composite: composite, Label: surveyLabel(float64(composite))}, nil
}

func surveyLabel(composite float64) string {
	switch {
	case composite >= surveyHappyMin:
		return MoodHappy
	case composite >= surveyNeutralMin:
		return MoodNeutral
	default:
		return MoodStressed
	}
}
