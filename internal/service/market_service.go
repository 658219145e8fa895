package service

import (
	"math/rand"
	"time"

	"tradelens_backend/internal/model"
)

// priceVolatility bounds the simulated move to ±2% of the base price.
const priceVolatility = 0.02

var basePrices = map[string]float64{
	"BTC": 43250,
	"ETH": 2750,
	"ADA": 0.45,
}

var sentimentLabels = []string{"Bullish", "Bearish", "Neutral", "Cautiously Optimistic", "Uncertain"}

// MarketService fabricates plausible market data for the practice UI.
// Prices jitter around fixed base levels; nothing here touches a real
// exchange.
type MarketService struct {
	rng *rand.Rand
}

func NewMarketService() *MarketService {
	return &MarketService{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Quote samples a simulated spot price for the asset. Unknown assets
// quote at the BTC base level.
func (s *MarketService) Quote(asset string) model.Quote {
	base, ok := basePrices[asset]
	if !ok {
		base = basePrices["BTC"]
	}
	change := (s.rng.Float64() - 0.5) * 2 * priceVolatility
	return model.Quote{
		Asset:     asset,
		Price:     base * (1 + change),
		Change:    change * 100,
		Timestamp: time.Now(),
	}
}

// Sentiment samples a simulated market-mood reading.
func (s *MarketService) Sentiment(asset string) model.Sentiment {
	flow := "Outflow"
	if s.rng.Float64() > 0.5 {
		flow = "Inflow"
	}
	return model.Sentiment{
		Overall:           sentimentLabels[s.rng.Intn(len(sentimentLabels))],
		FearGreedIndex:    s.rng.Intn(100),
		SocialSentiment:   s.rng.Intn(100),
		InstitutionalFlow: flow,
	}
}
