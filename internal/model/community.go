package model

import (
	"fmt"
	"time"
)

// PostType tags what kind of content a community post carries.
type PostType string

const (
	PostTweet      PostType = "tweet"
	PostPrediction PostType = "prediction"
	PostAnalysis   PostType = "analysis"
	PostDiscussion PostType = "discussion"
	PostNews       PostType = "news"
)

func (t PostType) Valid() bool {
	switch t {
	case PostTweet, PostPrediction, PostAnalysis, PostDiscussion, PostNews:
		return true
	}
	return false
}

// User badges shown next to post authors.
const (
	BadgeExpert   = "expert"
	BadgeVerified = "verified"
	BadgeTrader   = "trader"
	BadgeAnalyst  = "analyst"
	BadgeDiamond  = "diamond"
	BadgeLearner  = "learner"
)

// KnownSymbols are the crypto symbols the feed tallies individually.
// Posts with any other symbol still count toward the ALL total.
var KnownSymbols = []string{"BTC", "ETH", "ADA", "SOL", "DOT", "MATIC", "LINK", "DOGE"}

// Comment is an append-only reply owned by exactly one post.
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommunityPost is one entry in the social feed.
//
// Likes is a derived cache of len(LikedBy); PostRepository keeps the two in
// step on every toggle. Posts are stored most-recent-first, so retrieval
// order doubles as the default "recent" order.
type CommunityPost struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	UserName     string    `json:"userName"`
	UserBadge    string    `json:"userBadge,omitempty"`
	CryptoSymbol string    `json:"cryptoSymbol"`
	PostType     PostType  `json:"postType"`
	Content      string    `json:"content"`
	Prediction   Direction `json:"prediction,omitempty"`
	Confidence   int       `json:"confidence,omitempty"`
	Likes        int       `json:"likes"`
	LikedBy      []string  `json:"likedBy"`
	Comments     []Comment `json:"comments"`
	Tags         []string  `json:"tags"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Validate checks the fields a post must carry before it is stored.
func (p *CommunityPost) Validate() error {
	if p.UserID == "" {
		return fmt.Errorf("%w: post author is required", ErrValidation)
	}
	if p.Content == "" {
		return fmt.Errorf("%w: post content is required", ErrValidation)
	}
	if p.PostType != "" && !p.PostType.Valid() {
		return fmt.Errorf("%w: unknown post type %q", ErrValidation, p.PostType)
	}
	if p.Prediction != "" && !p.Prediction.Valid() {
		return fmt.Errorf("%w: prediction must be UP, DOWN or FLAT", ErrValidation)
	}
	return nil
}

// HasPrediction reports whether the post carries a price call.
func (p *CommunityPost) HasPrediction() bool {
	return p.Prediction != ""
}

// LikedByUser reports whether userID is in the liker set.
func (p *CommunityPost) LikedByUser(userID string) bool {
	for _, id := range p.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// Engagement is the popularity metric used by the engagement sort.
func (p *CommunityPost) Engagement() int {
	return p.Likes + len(p.Comments)
}
