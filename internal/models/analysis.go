package models

// AnalysisRequest lives for a single submission.
type AnalysisRequest struct {
	JobDescription string
	ResumeText     string
}

type AnalysisResult struct {
	MatchPercent    int      `json:"match_percent"`
	MissingKeywords []string `json:"missing_keywords"`
	ProfileSummary  string   `json:"profile_summary"`
}

type MatchTier string

const (
	TierPositive MatchTier = "positive"
	TierNeutral  MatchTier = "neutral"
	TierNegative MatchTier = "negative"
)

// TierFor buckets a match percentage. Lower edges are inclusive.
func TierFor(percent int) MatchTier {
	switch {
	case percent >= 80:
		return TierPositive
	case percent >= 50:
		return TierNeutral
	default:
		return TierNegative
	}
}

func (t MatchTier) Label() string {
	switch t {
	case TierPositive:
		return "Great Match!"
	case TierNeutral:
		return "Average Match"
	case TierNegative:
		return "Low Match"
	}
	return ""
}
