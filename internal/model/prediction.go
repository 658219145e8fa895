package model

import (
	"fmt"
	"time"
)

// Direction is a predicted price direction.
type Direction string

const (
	DirectionUp   Direction = "UP"
	DirectionDown Direction = "DOWN"
	DirectionFlat Direction = "FLAT"
)

func (d Direction) Valid() bool {
	switch d {
	case DirectionUp, DirectionDown, DirectionFlat:
		return true
	}
	return false
}

// Outcome is the settled result of a prediction.
type Outcome string

const (
	OutcomePending Outcome = "pending"
	OutcomeWin     Outcome = "win"
	OutcomeLoss    Outcome = "loss"
)

func (o Outcome) Valid() bool {
	switch o {
	case OutcomePending, OutcomeWin, OutcomeLoss:
		return true
	}
	return false
}

// Prediction is a user-submitted price call. Immutable once stored except
// for Result, which is settled exactly once.
type Prediction struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Asset      string    `json:"asset"`
	Timeframe  string    `json:"timeframe"`
	Direction  Direction `json:"direction"`
	Confidence int       `json:"confidence"`
	Rationale  string    `json:"rationale"`
	CreatedAt  time.Time `json:"createdAt"`
	Result     Outcome   `json:"result"`
}

// Validate enforces the enum and range constraints at construction time
// rather than trusting caller-supplied shapes.
func (p *Prediction) Validate() error {
	if p.Asset == "" {
		return fmt.Errorf("%w: asset is required", ErrValidation)
	}
	if !p.Direction.Valid() {
		return fmt.Errorf("%w: direction must be UP, DOWN or FLAT", ErrValidation)
	}
	if p.Confidence < 0 || p.Confidence > 100 {
		return fmt.Errorf("%w: confidence must be between 0 and 100", ErrValidation)
	}
	return nil
}
