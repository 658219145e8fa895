package service

import (
	"context"
	"sort"
	"strings"

	"tradelens_backend/internal/model"
	"tradelens_backend/internal/repository"
	"tradelens_backend/internal/util"
)

// Feed sort orders.
const (
	SortRecent     = "recent"
	SortPopular    = "popular"
	SortAccurate   = "accurate"
	SortEngagement = "engagement"
)

// FeedFilter narrows and orders one feed read. It is plain request state
// passed per call; nothing about the filter is kept between reads.
type FeedFilter struct {
	CryptoSymbol string // "" or "ALL" matches every symbol
	PostType     string // "" or "all" matches every type
	Trend        string // case-insensitive substring match over tags
	Sort         string // recent (default), popular, accurate, engagement
}

type CommunityService struct {
	PostRepo *repository.PostRepository
}

func NewCommunityService(postRepo *repository.PostRepository) *CommunityService {
	return &CommunityService{PostRepo: postRepo}
}

type PostRequest struct {
	UserBadge    string   `json:"userBadge"`
	CryptoSymbol string   `json:"cryptoSymbol"`
	PostType     string   `json:"postType"`
	Content      string   `json:"content" binding:"required"`
	Prediction   string   `json:"prediction"`
	Confidence   int      `json:"confidence"`
	Tags         []string `json:"tags"`
}

type CommentRequest struct {
	Content string `json:"content" binding:"required,max=1000"`
}

// GetFeed applies, in order: symbol filter, type filter, trend filter,
// then the requested sort. The result is a fresh slice; the stored
// collection order is never touched. All sorts are stable, so ties keep
// their original relative order.
func (s *CommunityService) GetFeed(ctx context.Context, filter FeedFilter) ([]model.CommunityPost, error) {
	posts, err := s.PostRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]model.CommunityPost, 0, len(posts))
	for _, p := range posts {
		if filter.CryptoSymbol != "" && filter.CryptoSymbol != "ALL" && p.CryptoSymbol != filter.CryptoSymbol {
			continue
		}
		if filter.PostType != "" && filter.PostType != "all" && string(p.PostType) != filter.PostType {
			continue
		}
		if filter.Trend != "" && !matchesTrend(p.Tags, filter.Trend) {
			continue
		}
		filtered = append(filtered, p)
	}

	return sortPosts(filtered, filter.Sort), nil
}

func matchesTrend(tags []string, trend string) bool {
	needle := strings.ToLower(trend)
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func sortPosts(posts []model.CommunityPost, order string) []model.CommunityPost {
	switch order {
	case SortPopular:
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].Likes > posts[j].Likes
		})
	case SortAccurate:
		// Only prediction-carrying posts can be ranked by confidence.
		withPrediction := posts[:0]
		for _, p := range posts {
			if p.HasPrediction() {
				withPrediction = append(withPrediction, p)
			}
		}
		posts = withPrediction
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].Confidence > posts[j].Confidence
		})
	case SortEngagement:
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].Engagement() > posts[j].Engagement()
		})
	default: // recent
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		})
	}
	return posts
}

// AddPost fills defaults (trader badge, BTC, tweet, empty tags), validates
// and prepends the post.
func (s *CommunityService) AddPost(ctx context.Context, userID, userName string, req PostRequest) (*model.CommunityPost, error) {
	post := &model.CommunityPost{
		UserID:       userID,
		UserName:     userName,
		UserBadge:    req.UserBadge,
		CryptoSymbol: req.CryptoSymbol,
		PostType:     model.PostType(req.PostType),
		Content:      req.Content,
		Prediction:   model.Direction(req.Prediction),
		Confidence:   req.Confidence,
		Tags:         req.Tags,
	}

	if post.UserBadge == "" {
		post.UserBadge = model.BadgeTrader
	}
	if post.CryptoSymbol == "" {
		post.CryptoSymbol = "BTC"
	}
	if post.PostType == "" {
		post.PostType = model.PostTweet
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}
	return s.PostRepo.Store(ctx, post)
}

// ToggleLike flips the user's like on the post and persists immediately.
func (s *CommunityService) ToggleLike(ctx context.Context, postID, userID string) (*model.CommunityPost, error) {
	post, err := s.PostRepo.ToggleLike(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, util.ErrPostNotFound
	}
	return post, nil
}

// AddComment appends the comment to the post.
func (s *CommunityService) AddComment(ctx context.Context, postID, userID, userName string, req CommentRequest) (*model.CommunityPost, error) {
	post, err := s.PostRepo.AddComment(ctx, postID, model.Comment{
		UserID:   userID,
		UserName: userName,
		Content:  req.Content,
	})
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, util.ErrPostNotFound
	}
	return post, nil
}

// CryptoPostCounts tallies posts per known symbol plus an ALL total.
// Posts with an unrecognized symbol count toward ALL only.
func (s *CommunityService) CryptoPostCounts(ctx context.Context) (map[string]int, error) {
	posts, err := s.PostRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{"ALL": len(posts)}
	for _, sym := range model.KnownSymbols {
		counts[sym] = 0
	}
	for _, p := range posts {
		if _, known := counts[p.CryptoSymbol]; known && p.CryptoSymbol != "ALL" {
			counts[p.CryptoSymbol]++
		}
	}
	return counts, nil
}
