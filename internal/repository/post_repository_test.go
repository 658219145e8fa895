package repository

import (
	"context"
	"testing"

	"tradelens_backend/internal/model"
)

func storeTestPost(t *testing.T, repo *PostRepository, symbol string) *model.CommunityPost {
	t.Helper()
	post, err := repo.Store(context.Background(), &model.CommunityPost{
		UserID:       "user001",
		UserName:     "Tester",
		CryptoSymbol: symbol,
		PostType:     model.PostTweet,
		Content:      "test content",
	})
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	return post
}

func TestPostStoreAssignsDefaults(t *testing.T) {
	repo := NewPostRepository(newTestGateway(t))
	post := storeTestPost(t, repo, "BTC")

	if post.ID == "" {
		t.Error("expected a generated id")
	}
	if post.CreatedAt.IsZero() {
		t.Error("expected a creation timestamp")
	}
	if post.Likes != 0 || len(post.LikedBy) != 0 || len(post.Comments) != 0 {
		t.Errorf("expected zeroed engagement, got likes=%d likedBy=%v comments=%v",
			post.Likes, post.LikedBy, post.Comments)
	}
}

func TestPostStorePrepends(t *testing.T) {
	repo := NewPostRepository(newTestGateway(t))
	first := storeTestPost(t, repo, "BTC")
	second := storeTestPost(t, repo, "ETH")

	posts, err := repo.All(context.Background())
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].ID != second.ID || posts[1].ID != first.ID {
		t.Errorf("expected most-recent-first order, got %s then %s", posts[0].ID, posts[1].ID)
	}
}

func TestToggleLike(t *testing.T) {
	repo := NewPostRepository(newTestGateway(t))
	post := storeTestPost(t, repo, "BTC")
	ctx := context.Background()

	liked, err := repo.ToggleLike(ctx, post.ID, "user002")
	if err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}
	if liked.Likes != 1 {
		t.Errorf("likes after like = %d, want 1", liked.Likes)
	}
	if !liked.LikedByUser("user002") {
		t.Error("user002 missing from likedBy after like")
	}
	if liked.Likes != len(liked.LikedBy) {
		t.Errorf("likes=%d out of step with likedBy=%v", liked.Likes, liked.LikedBy)
	}

	unliked, err := repo.ToggleLike(ctx, post.ID, "user002")
	if err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}
	if unliked.Likes != 0 {
		t.Errorf("likes after unlike = %d, want 0", unliked.Likes)
	}
	if unliked.LikedByUser("user002") {
		t.Error("user002 still in likedBy after unlike")
	}
}

func TestToggleLikeDoubleToggleRestoresState(t *testing.T) {
	repo := NewPostRepository(newTestGateway(t))
	post := storeTestPost(t, repo, "BTC")
	ctx := context.Background()

	// A second liker so the post is not empty when the toggles cancel out.
	if _, err := repo.ToggleLike(ctx, post.ID, "user009"); err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}

	before, _ := repo.All(ctx)
	for i := 0; i < 2; i++ {
		if _, err := repo.ToggleLike(ctx, post.ID, "user002"); err != nil {
			t.Fatalf("ToggleLike: %v", err)
		}
	}
	after, _ := repo.All(ctx)

	if before[0].Likes != after[0].Likes {
		t.Errorf("likes changed across double toggle: %d -> %d", before[0].Likes, after[0].Likes)
	}
	if len(before[0].LikedBy) != len(after[0].LikedBy) {
		t.Errorf("likedBy changed across double toggle: %v -> %v", before[0].LikedBy, after[0].LikedBy)
	}
	if after[0].LikedByUser("user002") {
		t.Error("user002 still present after double toggle")
	}
}

func TestToggleLikeNeverDuplicatesUser(t *testing.T) {
	repo := NewPostRepository(newTestGateway(t))
	post := storeTestPost(t, repo, "BTC")
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := repo.ToggleLike(ctx, post.ID, "user002"); err != nil {
			t.Fatalf("ToggleLike: %v", err)
		}
	}

	posts, _ := repo.All(ctx)
	seen := 0
	for _, id := range posts[0].LikedBy {
		if id == "user002" {
			seen++
		}
	}
	if seen > 1 {
		t.Errorf("user002 appears %d times in likedBy", seen)
	}
	if posts[0].Likes != len(posts[0].LikedBy) {
		t.Errorf("likes=%d out of step with likedBy=%v", posts[0].Likes, posts[0].LikedBy)
	}
}

func TestToggleLikeUnknownPost(t *testing.T) {
	repo := NewPostRepository(newTestGateway(t))
	storeTestPost(t, repo, "BTC")

	post, err := repo.ToggleLike(context.Background(), "missing", "user002")
	if err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}
	if post != nil {
		t.Errorf("expected nil for unknown post id, got %+v", post)
	}
}

func TestAddComment(t *testing.T) {
	repo := NewPostRepository(newTestGateway(t))
	post := storeTestPost(t, repo, "BTC")
	ctx := context.Background()

	updated, err := repo.AddComment(ctx, post.ID, model.Comment{
		UserID:   "user002",
		UserName: "Commenter",
		Content:  "nice call",
	})
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if len(updated.Comments) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(updated.Comments))
	}
	c := updated.Comments[0]
	if c.ID == "" || c.CreatedAt.IsZero() {
		t.Errorf("comment missing id or timestamp: %+v", c)
	}
	if c.Content != "nice call" {
		t.Errorf("comment content = %q", c.Content)
	}

	missing, err := repo.AddComment(ctx, "missing", model.Comment{Content: "x"})
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown post id, got %+v", missing)
	}
}

func TestSeedSampleDataOnlyWhenEmpty(t *testing.T) {
	repo := NewPostRepository(newTestGateway(t))
	ctx := context.Background()

	if err := repo.SeedSampleData(ctx); err != nil {
		t.Fatalf("SeedSampleData: %v", err)
	}
	posts, _ := repo.All(ctx)
	if len(posts) != 8 {
		t.Fatalf("expected 8 sample posts, got %d", len(posts))
	}

	// A second call must not re-seed over live data.
	if err := repo.SeedSampleData(ctx); err != nil {
		t.Fatalf("SeedSampleData: %v", err)
	}
	again, _ := repo.All(ctx)
	if len(again) != 8 {
		t.Errorf("expected 8 posts after repeated seed, got %d", len(again))
	}
}
