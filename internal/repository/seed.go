package repository

import (
	"time"

	"tradelens_backend/internal/model"
)

// SamplePosts is the bundled starter feed: 4 BTC, 2 ETH, 1 ADA and 1 SOL
// post. Posts tagged NEUTRAL in the source dataset carry no prediction.
func SamplePosts() []model.CommunityPost {
	ts := func(s string) time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return t
	}

	return []model.CommunityPost{
		{
			ID:           "post001",
			UserID:       "user001",
			UserName:     "CryptoTrader_Alex",
			UserBadge:    model.BadgeExpert,
			CryptoSymbol: "BTC",
			PostType:     model.PostPrediction,
			Content:      "Just analyzed BTC charts and seeing strong bullish signals. RSI oversold, MACD crossing positive. Expecting breakout above $45k resistance.",
			Prediction:   model.DirectionUp,
			Confidence:   85,
			Likes:        12,
			LikedBy:      []string{"user002", "user003"},
			Comments: []model.Comment{
				{ID: "comment001", UserID: "user020", UserName: "ChartReader", Content: "Great analysis! I see the same patterns.", CreatedAt: ts("2024-01-15T10:35:00Z")},
				{ID: "comment002", UserID: "user021", UserName: "BearishBob", Content: "Disagree, resistance at 45k is too strong", CreatedAt: ts("2024-01-15T10:40:00Z")},
			},
			Tags:      []string{"BTC", "TechnicalAnalysis", "Bullish"},
			CreatedAt: ts("2024-01-15T10:30:00Z"),
		},
		{
			ID:           "post002",
			UserID:       "user002",
			UserName:     "BlockchainBeth",
			UserBadge:    model.BadgeVerified,
			CryptoSymbol: "ETH",
			PostType:     model.PostAnalysis,
			Content:      "Ethereum's upcoming Shanghai upgrade could be a game changer. Staking withdrawals will provide more liquidity but also test market sentiment.",
			Likes:        8,
			LikedBy:      []string{"user001"},
			Comments: []model.Comment{
				{ID: "comment003", UserID: "user022", UserName: "StakingSteve", Content: "Been waiting for this upgrade!", CreatedAt: ts("2024-01-15T09:50:00Z")},
			},
			Tags:      []string{"ETH", "EthereumUpgrade", "Staking"},
			CreatedAt: ts("2024-01-15T09:45:00Z"),
		},
		{
			ID:           "post003",
			UserID:       "user003",
			UserName:     "AltcoinAndy",
			UserBadge:    model.BadgeTrader,
			CryptoSymbol: "ADA",
			PostType:     model.PostTweet,
			Content:      "Cardano's development activity is through the roof! Smart contracts ecosystem growing rapidly. Bullish on long-term fundamentals.",
			Prediction:   model.DirectionUp,
			Confidence:   78,
			Likes:        15,
			LikedBy:      []string{"user001", "user002", "user004"},
			Comments:     []model.Comment{},
			Tags:         []string{"ADA", "Development", "SmartContracts"},
			CreatedAt:    ts("2024-01-15T08:20:00Z"),
		},
		{
			ID:           "post004",
			UserID:       "user004",
			UserName:     "DeFi_Dave",
			UserBadge:    model.BadgeAnalyst,
			CryptoSymbol: "BTC",
			PostType:     model.PostDiscussion,
			Content:      "Anyone else noticing the correlation between Bitcoin and traditional markets weakening? Could be sign of crypto maturing as asset class.",
			Likes:        20,
			LikedBy:      []string{"user001", "user005"},
			Comments: []model.Comment{
				{ID: "comment004", UserID: "user023", UserName: "MacroMike", Content: "Yes! Decoupling is happening slowly", CreatedAt: ts("2024-01-15T07:20:00Z")},
				{ID: "comment005", UserID: "user024", UserName: "TradFiTom", Content: "Still see correlation during major market events", CreatedAt: ts("2024-01-15T07:25:00Z")},
			},
			Tags:      []string{"BTC", "MarketCorrelation", "Institutional"},
			CreatedAt: ts("2024-01-15T07:15:00Z"),
		},
		{
			ID:           "post005",
			UserID:       "user005",
			UserName:     "TechAnalyst_Sam",
			UserBadge:    model.BadgeExpert,
			CryptoSymbol: "ETH",
			PostType:     model.PostPrediction,
			Content:      "ETH/BTC ratio looking strong. Expecting ETH to outperform BTC in the next 2 weeks. Target: 0.075 BTC per ETH.",
			Prediction:   model.DirectionUp,
			Confidence:   82,
			Likes:        18,
			LikedBy:      []string{"user002", "user003", "user006"},
			Comments:     []model.Comment{},
			Tags:         []string{"ETH", "BTC", "Ratio", "Outperformance"},
			CreatedAt:    ts("2024-01-14T22:30:00Z"),
		},
		{
			ID:           "post006",
			UserID:       "user006",
			UserName:     "HODLer_Jane",
			UserBadge:    model.BadgeDiamond,
			CryptoSymbol: "BTC",
			PostType:     model.PostTweet,
			Content:      "Dollar cost averaging into Bitcoin for 3 years now. Best decision I ever made. Patience pays off in crypto!",
			Prediction:   model.DirectionUp,
			Confidence:   90,
			Likes:        25,
			LikedBy:      []string{"user001", "user003", "user007"},
			Comments: []model.Comment{
				{ID: "comment006", UserID: "user025", UserName: "NewbieTom", Content: "Inspiring! Just started DCA myself", CreatedAt: ts("2024-01-14T20:50:00Z")},
			},
			Tags:      []string{"BTC", "DCA", "HODL", "LongTerm"},
			CreatedAt: ts("2024-01-14T20:45:00Z"),
		},
		{
			ID:           "post007",
			UserID:       "user007",
			UserName:     "ChartMaster_Pro",
			UserBadge:    model.BadgeExpert,
			CryptoSymbol: "SOL",
			PostType:     model.PostAnalysis,
			Content:      "Solana network performance has been impressive lately. 400ms block times and low fees making it attractive for DeFi apps.",
			Prediction:   model.DirectionUp,
			Confidence:   75,
			Likes:        10,
			LikedBy:      []string{"user008"},
			Comments:     []model.Comment{},
			Tags:         []string{"SOL", "Performance", "DeFi", "BlockTime"},
			CreatedAt:    ts("2024-01-14T18:20:00Z"),
		},
		{
			ID:           "post008",
			UserID:       "user008",
			UserName:     "CryptoNewbie_01",
			UserBadge:    model.BadgeLearner,
			CryptoSymbol: "BTC",
			PostType:     model.PostDiscussion,
			Content:      "New to crypto trading. Any advice on risk management? Hearing a lot about position sizing and stop losses.",
			Likes:        30,
			LikedBy:      []string{"user001", "user002", "user009"},
			Comments: []model.Comment{
				{ID: "comment007", UserID: "user026", UserName: "RiskGuru", Content: "Never risk more than 2% per trade!", CreatedAt: ts("2024-01-14T16:35:00Z")},
				{ID: "comment008", UserID: "user027", UserName: "SafeTrader", Content: "Start small, learn the basics first", CreatedAt: ts("2024-01-14T16:40:00Z")},
			},
			Tags:      []string{"Education", "RiskManagement", "Beginner"},
			CreatedAt: ts("2024-01-14T16:30:00Z"),
		},
	}
}
