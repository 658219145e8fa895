package model

import (
	"errors"
	"testing"
)

func TestPredictionValidate(t *testing.T) {
	tests := []struct {
		name    string
		p       Prediction
		wantErr bool
	}{
		{"valid", Prediction{Asset: "BTC", Direction: DirectionUp, Confidence: 70}, false},
		{"zero confidence ok", Prediction{Asset: "BTC", Direction: DirectionFlat}, false},
		{"missing asset", Prediction{Direction: DirectionUp}, true},
		{"bad direction", Prediction{Asset: "BTC", Direction: "SIDEWAYS"}, true},
		{"confidence over 100", Prediction{Asset: "BTC", Direction: DirectionUp, Confidence: 101}, true},
		{"negative confidence", Prediction{Asset: "BTC", Direction: DirectionUp, Confidence: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if tt.wantErr && !errors.Is(err, ErrValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestUserAdjustHealthScoreClamps(t *testing.T) {
	u := User{TraderHealthScore: 50}

	u.AdjustHealthScore(2)
	if u.TraderHealthScore != 52 {
		t.Errorf("health = %d, want 52", u.TraderHealthScore)
	}

	u.AdjustHealthScore(1000)
	if u.TraderHealthScore != MaxHealthScore {
		t.Errorf("health = %d, want %d", u.TraderHealthScore, MaxHealthScore)
	}

	u.AdjustHealthScore(-1000)
	if u.TraderHealthScore != MinHealthScore {
		t.Errorf("health = %d, want %d", u.TraderHealthScore, MinHealthScore)
	}
}

func TestCommunityPostValidate(t *testing.T) {
	valid := CommunityPost{UserID: "u", Content: "c", PostType: PostTweet}
	if err := valid.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	bad := []CommunityPost{
		{Content: "c"},
		{UserID: "u"},
		{UserID: "u", Content: "c", PostType: "rant"},
		{UserID: "u", Content: "c", Prediction: "SIDEWAYS"},
	}
	for i, p := range bad {
		if err := p.Validate(); !errors.Is(err, ErrValidation) {
			t.Errorf("case %d: expected validation error, got %v", i, err)
		}
	}
}
