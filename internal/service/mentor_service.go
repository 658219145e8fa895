package service

import (
	"strings"

	"tradelens_backend/internal/model"
)

// MentorProvider hands out canned forecasts and the derived coaching
// artifacts. The static implementation below is the only one today; a
// real model service would satisfy the same interface.
type MentorProvider interface {
	Forecast(asset, timeframe string, rsi int) model.MentorForecast
	Explain(forecast model.MentorForecast) []string
	AssessRisk(forecast model.MentorForecast, userDirection model.Direction, userConfidence int) model.RiskAssessment
	LearningInsights(forecast model.MentorForecast, userDirection model.Direction, rationale string) []model.Insight
}

// StaticMentor serves deterministic forecasts from a fixed lookup table
// keyed by asset and RSI regime. No market data is consulted.
type StaticMentor struct {
	forecasts map[string]model.MentorForecast
}

func NewStaticMentor() *StaticMentor {
	return &StaticMentor{forecasts: map[string]model.MentorForecast{
		"BTC-1h-high-rsi": {
			Direction:  model.DirectionDown,
			Confidence: 72,
			Reasoning:  "High RSI (78) combined with declining volume suggests weakening momentum and potential reversal",
			Features: []model.MentorFeature{
				{Name: "RSI Level", Value: "78", Importance: 0.35, Impact: "negative"},
				{Name: "Volume Trend", Value: "declining", Importance: 0.28, Impact: "negative"},
				{Name: "Price Momentum", Value: "bullish", Importance: 0.20, Impact: "positive"},
				{Name: "Market Sentiment", Value: "neutral", Importance: 0.17, Impact: "neutral"},
			},
			RiskLevel:  "Medium-High",
			StopLoss:   "$41,800",
			TakeProfit: "$40,500",
		},
		"BTC-1h-normal-rsi": {
			Direction:  model.DirectionUp,
			Confidence: 65,
			Reasoning:  "Moderate RSI with increasing volume supports continued upward movement",
			Features: []model.MentorFeature{
				{Name: "Volume Trend", Value: "increasing", Importance: 0.32, Impact: "positive"},
				{Name: "RSI Level", Value: "45", Importance: 0.25, Impact: "positive"},
				{Name: "Price Momentum", Value: "bullish", Importance: 0.23, Impact: "positive"},
				{Name: "Support Level", Value: "strong", Importance: 0.20, Impact: "positive"},
			},
			RiskLevel:  "Medium",
			StopLoss:   "$42,100",
			TakeProfit: "$44,800",
		},
		"ETH-1h": {
			Direction:  model.DirectionUp,
			Confidence: 58,
			Reasoning:  "ETH showing relative strength against BTC with healthy volume",
			Features: []model.MentorFeature{
				{Name: "ETH/BTC Ratio", Value: "strengthening", Importance: 0.30, Impact: "positive"},
				{Name: "Volume Profile", Value: "healthy", Importance: 0.25, Impact: "positive"},
				{Name: "RSI Level", Value: "52", Importance: 0.25, Impact: "neutral"},
				{Name: "Market Structure", Value: "bullish", Importance: 0.20, Impact: "positive"},
			},
			RiskLevel:  "Medium",
			StopLoss:   "$2,680",
			TakeProfit: "$2,820",
		},
	}}
}

// overboughtRSI splits BTC lookups into the high-RSI and normal-RSI rows.
const overboughtRSI = 70

// Forecast resolves the table row for the asset and RSI regime. Unknown
// asset/timeframe combinations fall back to the BTC normal-RSI row.
func (m *StaticMentor) Forecast(asset, timeframe string, rsi int) model.MentorForecast {
	key := asset + "-" + timeframe
	switch {
	case asset == "BTC" && rsi > overboughtRSI:
		key = "BTC-1h-high-rsi"
	case asset == "BTC":
		key = "BTC-1h-normal-rsi"
	case asset == "ETH":
		key = "ETH-1h"
	}

	forecast, ok := m.forecasts[key]
	if !ok {
		forecast = m.forecasts["BTC-1h-normal-rsi"]
	}
	return forecast
}

// Explain returns the per-direction narrative paragraphs for the forecast.
func (m *StaticMentor) Explain(forecast model.MentorForecast) []string {
	switch forecast.Direction {
	case model.DirectionDown:
		return []string{
			"The AI model predicts a downward movement based on several key technical indicators.",
			"The high RSI reading suggests the asset is overbought, which historically leads to price corrections.",
			"Declining volume during the recent price rise indicates weakening buyer interest.",
			"The combination of these factors creates a high probability scenario for a short-term reversal.",
		}
	case model.DirectionUp:
		return []string{
			"The AI model identifies bullish momentum based on technical analysis.",
			"Volume patterns support the current price direction, indicating strong market participation.",
			"RSI levels remain in healthy territory, suggesting room for further upward movement.",
			"Market structure and support levels provide a favorable risk-reward setup.",
		}
	default:
		return []string{
			"The AI model expects sideways movement due to conflicting signals.",
			"Technical indicators show mixed signals with no clear directional bias.",
			"Current price level represents a key decision point for market participants.",
			"Range-bound trading is likely until a clear catalyst emerges.",
		}
	}
}

// Health score impact of agreeing or disagreeing with the mentor.
const (
	healthMentorAgree    = 2
	healthMentorDisagree = -1
)

// AssessRisk grades the user's call against the mentor forecast. Matching
// direction with a confidence gap under 20 points is low risk; matching
// direction with a wider gap is medium; a direction mismatch is high.
func (m *StaticMentor) AssessRisk(forecast model.MentorForecast, userDirection model.Direction, userConfidence int) model.RiskAssessment {
	agree := forecast.Direction == userDirection
	gap := forecast.Confidence - userConfidence
	if gap < 0 {
		gap = -gap
	}

	assessment := model.RiskAssessment{
		StopLoss:     forecast.StopLoss,
		TakeProfit:   forecast.TakeProfit,
		HealthImpact: healthMentorDisagree,
	}
	if agree {
		assessment.HealthImpact = healthMentorAgree
	}

	switch {
	case agree && gap < 20:
		assessment.Level = model.RiskLow
		assessment.Recommendations = []string{
			"Your prediction aligns well with the AI analysis",
			"Consider a standard position size for this setup",
			"Monitor volume for confirmation of the move",
		}
	case agree:
		assessment.Level = model.RiskMedium
		assessment.Recommendations = []string{
			"Direction matches but confidence levels differ",
			"Consider adjusting position size based on your confidence",
			"Review the factors that led to your confidence level",
		}
	default:
		assessment.Level = model.RiskHigh
		assessment.Recommendations = []string{
			"Your prediction differs from AI analysis - proceed with caution",
			"Consider reducing position size or waiting for more confirmation",
			"Review the AI's reasoning and reassess your analysis",
		}
	}
	return assessment
}

// LearningInsights builds per-skill coaching notes by comparing the
// rationale text against the forecast's dominant features.
func (m *StaticMentor) LearningInsights(forecast model.MentorForecast, userDirection model.Direction, rationale string) []model.Insight {
	insights := []model.Insight{}
	lowered := strings.ToLower(rationale)

	mentionsRSI := strings.Contains(lowered, "rsi")
	rsiMatters := featureImportant(forecast.Features, func(f model.MentorFeature) bool {
		return f.Name == "RSI Level" && f.Importance > 0.3
	})
	if mentionsRSI && rsiMatters {
		insights = append(insights, model.Insight{
			Type:    "success",
			Message: "Great job considering RSI! It's a key factor in this prediction.",
			Skill:   "RSI Analysis",
		})
	} else if !mentionsRSI && rsiMatters {
		insights = append(insights, model.Insight{
			Type:       "improvement",
			Message:    "Consider RSI levels in your analysis - it's showing strong signals here.",
			Skill:      "RSI Analysis",
			Suggestion: "Review the RSI lesson to strengthen this skill",
		})
	}

	if strings.Contains(lowered, "volume") {
		insights = append(insights, model.Insight{
			Type:    "success",
			Message: "Excellent volume analysis! This is crucial for confirming price movements.",
			Skill:   "Volume Analysis",
		})
	} else if featureImportant(forecast.Features, func(f model.MentorFeature) bool {
		return strings.Contains(f.Name, "Volume") && f.Importance > 0.25
	}) {
		insights = append(insights, model.Insight{
			Type:       "improvement",
			Message:    "Volume is a key factor here. Consider incorporating volume analysis.",
			Skill:      "Volume Analysis",
			Suggestion: "Take the Volume Analysis lesson to improve this skill",
		})
	}

	if userDirection == forecast.Direction {
		insights = append(insights, model.Insight{
			Type:    "success",
			Message: "Your directional prediction matches the AI! Well done.",
			Skill:   "Market Direction",
		})
	} else {
		insights = append(insights, model.Insight{
			Type:       "learning",
			Message:    "Different prediction from AI - great learning opportunity!",
			Skill:      "Market Analysis",
			Suggestion: "Review the AI's reasoning to understand alternative perspectives",
		})
	}

	return insights
}

func featureImportant(features []model.MentorFeature, match func(model.MentorFeature) bool) bool {
	for _, f := range features {
		if match(f) {
			return true
		}
	}
	return false
}
