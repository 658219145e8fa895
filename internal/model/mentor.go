package model

import "time"

// MentorFeature is one entry in a SHAP-style importance breakdown:
// a named indicator with a 0-1 weight and a signed impact tag.
type MentorFeature struct {
	Name       string  `json:"name"`
	Value      string  `json:"value"`
	Importance float64 `json:"importance"`
	Impact     string  `json:"impact"` // positive, negative or neutral
}

// MentorForecast is the canned mentor response for one (asset, condition) key.
type MentorForecast struct {
	Direction  Direction       `json:"direction"`
	Confidence int             `json:"confidence"`
	Reasoning  string          `json:"reasoning"`
	Features   []MentorFeature `json:"features"`
	RiskLevel  string          `json:"riskLevel"`
	StopLoss   string          `json:"stopLoss"`
	TakeProfit string          `json:"takeProfit"`
}

// Risk tiers produced when comparing a user's call against the mentor's.
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// RiskAssessment compares a user prediction with the mentor forecast.
type RiskAssessment struct {
	Level           string   `json:"level"`
	Recommendations []string `json:"recommendations"`
	StopLoss        string   `json:"stopLoss"`
	TakeProfit      string   `json:"takeProfit"`
	HealthImpact    int      `json:"healthImpact"`
}

// Insight is a per-skill learning note derived from the comparison.
type Insight struct {
	Type       string `json:"type"` // success, improvement or learning
	Message    string `json:"message"`
	Skill      string `json:"skill"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Quote is a simulated spot price sample.
type Quote struct {
	Asset     string    `json:"asset"`
	Price     float64   `json:"price"`
	Change    float64   `json:"change"` // percent move against the base price
	Timestamp time.Time `json:"timestamp"`
}

// Sentiment is a simulated market-mood sample.
type Sentiment struct {
	Overall           string `json:"overall"`
	FearGreedIndex    int    `json:"fearGreedIndex"`
	SocialSentiment   int    `json:"socialSentiment"`
	InstitutionalFlow string `json:"institutionalFlow"`
}
