package service

import (
	"testing"

	"tradelens_backend/internal/model"
)

func TestForecastBucketsByAssetAndRSI(t *testing.T) {
	mentor := NewStaticMentor()

	tests := []struct {
		name       string
		asset      string
		timeframe  string
		rsi        int
		direction  model.Direction
		confidence int
	}{
		{"BTC overbought", "BTC", "1h", 78, model.DirectionDown, 72},
		{"BTC normal", "BTC", "1h", 45, model.DirectionUp, 65},
		{"BTC boundary stays normal", "BTC", "1h", 70, model.DirectionUp, 65},
		{"ETH", "ETH", "1h", 52, model.DirectionUp, 58},
		{"unknown asset falls back", "ADA", "1h", 50, model.DirectionUp, 65},
		{"unknown timeframe falls back", "SOL", "4h", 50, model.DirectionUp, 65},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forecast := mentor.Forecast(tt.asset, tt.timeframe, tt.rsi)
			if forecast.Direction != tt.direction {
				t.Errorf("direction = %s, want %s", forecast.Direction, tt.direction)
			}
			if forecast.Confidence != tt.confidence {
				t.Errorf("confidence = %d, want %d", forecast.Confidence, tt.confidence)
			}
			if len(forecast.Features) == 0 {
				t.Error("expected a feature breakdown")
			}
		})
	}
}

func TestExplainMatchesDirection(t *testing.T) {
	mentor := NewStaticMentor()

	down := mentor.Explain(model.MentorForecast{Direction: model.DirectionDown})
	up := mentor.Explain(model.MentorForecast{Direction: model.DirectionUp})
	flat := mentor.Explain(model.MentorForecast{Direction: model.DirectionFlat})

	if len(down) != 4 || len(up) != 4 || len(flat) != 4 {
		t.Fatalf("expected 4 paragraphs per direction, got %d/%d/%d", len(down), len(up), len(flat))
	}
	if down[0] == up[0] {
		t.Error("down and up explanations should differ")
	}
}

func TestAssessRiskTiers(t *testing.T) {
	mentor := NewStaticMentor()
	forecast := mentor.Forecast("BTC", "1h", 45) // UP, confidence 65

	tests := []struct {
		name         string
		direction    model.Direction
		confidence   int
		level        string
		healthImpact int
	}{
		{"agree small gap", model.DirectionUp, 60, model.RiskLow, 2},
		{"agree wide gap", model.DirectionUp, 20, model.RiskMedium, 2},
		{"agree exact boundary", model.DirectionUp, 45, model.RiskMedium, 2},
		{"disagree", model.DirectionDown, 65, model.RiskHigh, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			risk := mentor.AssessRisk(forecast, tt.direction, tt.confidence)
			if risk.Level != tt.level {
				t.Errorf("level = %s, want %s", risk.Level, tt.level)
			}
			if risk.HealthImpact != tt.healthImpact {
				t.Errorf("health impact = %d, want %d", risk.HealthImpact, tt.healthImpact)
			}
			if len(risk.Recommendations) == 0 {
				t.Error("expected recommendations")
			}
			if risk.StopLoss != forecast.StopLoss || risk.TakeProfit != forecast.TakeProfit {
				t.Error("risk assessment should carry the forecast levels")
			}
		})
	}
}

func TestLearningInsights(t *testing.T) {
	mentor := NewStaticMentor()
	// High-RSI BTC forecast: RSI importance 0.35, volume importance 0.28.
	forecast := mentor.Forecast("BTC", "1h", 78)

	t.Run("rationale covering both skills", func(t *testing.T) {
		insights := mentor.LearningInsights(forecast, model.DirectionDown, "RSI is overbought and volume is fading")
		if len(insights) != 3 {
			t.Fatalf("expected 3 insights, got %d", len(insights))
		}
		for _, in := range insights {
			if in.Type != "success" {
				t.Errorf("insight %q type = %s, want success", in.Skill, in.Type)
			}
		}
	})

	t.Run("rationale missing both skills", func(t *testing.T) {
		insights := mentor.LearningInsights(forecast, model.DirectionUp, "just a feeling")
		var skills []string
		for _, in := range insights {
			skills = append(skills, in.Type+":"+in.Skill)
			if in.Type == "improvement" && in.Suggestion == "" {
				t.Errorf("improvement insight %q lacks a suggestion", in.Skill)
			}
		}
		if len(insights) != 3 {
			t.Fatalf("expected 3 insights, got %d: %v", len(insights), skills)
		}
		if insights[len(insights)-1].Type != "learning" {
			t.Errorf("direction mismatch should yield a learning insight, got %s", insights[len(insights)-1].Type)
		}
	})
}
