package repository

import (
	"context"
	"time"

	"tradelens_backend/internal/model"
	"tradelens_backend/internal/util"

	"github.com/google/uuid"
)

// PostRepository owns the community feed collection. Posts are prepended
// on creation, so the stored order is most-recent-first and doubles as the
// default feed order.
type PostRepository struct {
	gw *Gateway
}

func NewPostRepository(gw *Gateway) *PostRepository {
	return &PostRepository{gw: gw}
}

// Store assigns a fresh id and creation timestamp, zeroes the like count
// and comment list, and prepends the post.
func (r *PostRepository) Store(ctx context.Context, post *model.CommunityPost) (*model.CommunityPost, error) {
	r.gw.mu.Lock()
	defer r.gw.mu.Unlock()

	var posts []model.CommunityPost
	if _, err := r.gw.load(ctx, util.KeyPosts, &posts); err != nil {
		return nil, err
	}

	post.ID = uuid.New().String()
	post.CreatedAt = time.Now()
	post.Likes = 0
	post.LikedBy = []string{}
	post.Comments = []model.Comment{}
	if post.Tags == nil {
		post.Tags = []string{}
	}

	posts = append([]model.CommunityPost{*post}, posts...)
	if err := r.gw.save(ctx, util.KeyPosts, posts); err != nil {
		return nil, err
	}
	return post, nil
}

// All returns the collection in stored (most-recent-first) order.
func (r *PostRepository) All(ctx context.Context) ([]model.CommunityPost, error) {
	r.gw.mu.Lock()
	defer r.gw.mu.Unlock()

	var posts []model.CommunityPost
	if _, err := r.gw.load(ctx, util.KeyPosts, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// ToggleLike flips the user's membership in the liker set: present means
// remove and decrement (floored at 0), absent means add and increment.
// A user id therefore never appears twice in LikedBy. Returns nil without
// error for an unknown post id.
func (r *PostRepository) ToggleLike(ctx context.Context, postID, userID string) (*model.CommunityPost, error) {
	r.gw.mu.Lock()
	defer r.gw.mu.Unlock()

	var posts []model.CommunityPost
	if _, err := r.gw.load(ctx, util.KeyPosts, &posts); err != nil {
		return nil, err
	}

	for i := range posts {
		if posts[i].ID != postID {
			continue
		}

		liked := -1
		for j, id := range posts[i].LikedBy {
			if id == userID {
				liked = j
				break
			}
		}

		if liked >= 0 {
			posts[i].LikedBy = append(posts[i].LikedBy[:liked], posts[i].LikedBy[liked+1:]...)
			if posts[i].Likes > 0 {
				posts[i].Likes--
			}
		} else {
			posts[i].LikedBy = append(posts[i].LikedBy, userID)
			posts[i].Likes++
		}

		if err := r.gw.save(ctx, util.KeyPosts, posts); err != nil {
			return nil, err
		}
		p := posts[i]
		return &p, nil
	}
	return nil, nil
}

// AddComment appends a comment with a fresh id and timestamp to the
// matching post. Returns nil without error for an unknown post id.
func (r *PostRepository) AddComment(ctx context.Context, postID string, comment model.Comment) (*model.CommunityPost, error) {
	r.gw.mu.Lock()
	defer r.gw.mu.Unlock()

	var posts []model.CommunityPost
	if _, err := r.gw.load(ctx, util.KeyPosts, &posts); err != nil {
		return nil, err
	}

	for i := range posts {
		if posts[i].ID != postID {
			continue
		}

		comment.ID = uuid.New().String()
		comment.CreatedAt = time.Now()
		posts[i].Comments = append(posts[i].Comments, comment)

		if err := r.gw.save(ctx, util.KeyPosts, posts); err != nil {
			return nil, err
		}
		p := posts[i]
		return &p, nil
	}
	return nil, nil
}

// Replace swaps the entire collection. Used by snapshot import.
func (r *PostRepository) Replace(ctx context.Context, posts []model.CommunityPost) error {
	r.gw.mu.Lock()
	defer r.gw.mu.Unlock()
	return r.gw.save(ctx, util.KeyPosts, posts)
}

// SeedSampleData installs the bundled sample feed when the collection is
// empty, so a fresh install has something to show.
func (r *PostRepository) SeedSampleData(ctx context.Context) error {
	r.gw.mu.Lock()
	defer r.gw.mu.Unlock()

	var posts []model.CommunityPost
	if _, err := r.gw.load(ctx, util.KeyPosts, &posts); err != nil {
		return err
	}
	if len(posts) > 0 {
		return nil
	}
	return r.gw.save(ctx, util.KeyPosts, SamplePosts())
}
