package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

func TestAddPostAndFeedPaging(t *testing.T) {
	posts := newFakePostStore()
	svc := NewPostService(posts, zerolog.Nop())
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		if _, err := svc.AddPost(ctx, "ivan", "post content"); err != nil {
			t.Fatalf("add post: %v", err)
		}
	}

	first, err := svc.GetFeed(ctx, "ivan", 0)
	if err != nil {
		t.Fatalf("get feed: %v", err)
	}
	if len(first) != 10 {
		t.Fatalf("first page: %d posts, want 10", len(first))
	}

	second, err := svc.GetFeed(ctx, "ivan", 10)
	if err != nil {
		t.Fatalf("get feed page 2: %v", err)
	}
	if len(second) != 2 {
		t.Fatalf("second page: %d posts, want 2", len(second))
	}

	// A negative skip reads as the first page.
	clamped, err := svc.GetFeed(ctx, "ivan", -5)
	if err != nil {
		t.Fatalf("get feed negative skip: %v", err)
	}
	if len(clamped) != 10 {
		t.Fatalf("clamped page: %d posts, want 10", len(clamped))
	}

	for _, post := range first {
		if post.Likes == nil {
			t.Fatal("likes must encode as an array, not null")
		}
	}
}

func TestLikeToggle(t *testing.T) {
	posts := newFakePostStore()
	svc := NewPostService(posts, zerolog.Nop())
	ctx := context.Background()

	post, err := svc.AddPost(ctx, "ivan", "content")
	if err != nil {
		t.Fatalf("add post: %v", err)
	}

	count, err := svc.Like(ctx, "maria", post.ID, false)
	if err != nil {
		t.Fatalf("like: %v", err)
	}
	if count != 1 {
		t.Fatalf("count after like: %d", count)
	}

	_, err = svc.Like(ctx, "maria", post.ID, false)
	svcErr := requireServiceError(t, err, CodeConflict)
	if svcErr.Message != "You already liked this post" {
		t.Fatalf("unexpected message: %q", svcErr.Message)
	}

	count, err = svc.Like(ctx, "maria", post.ID, true)
	if err != nil {
		t.Fatalf("dislike: %v", err)
	}
	if count != 0 {
		t.Fatalf("count after dislike: %d", count)
	}

	// Removing an absent like is a silent no-op.
	if _, err := svc.Like(ctx, "maria", post.ID, true); err != nil {
		t.Fatalf("repeated dislike: %v", err)
	}

	_, err = svc.Like(ctx, "maria", "missing-post", false)
	requireServiceError(t, err, CodeNotFound)
}

func TestCommentPost(t *testing.T) {
	posts := newFakePostStore()
	svc := NewPostService(posts, zerolog.Nop())
	ctx := context.Background()

	post, err := svc.AddPost(ctx, "ivan", "content")
	if err != nil {
		t.Fatalf("add post: %v", err)
	}

	comment, err := svc.Comment(ctx, "maria", post.ID, "great post")
	if err != nil {
		t.Fatalf("comment: %v", err)
	}
	if comment.PostID != post.ID || comment.AuthorID != "maria" {
		t.Fatalf("comment: %+v", comment)
	}

	comments, err := svc.GetComments(ctx, post.ID)
	if err != nil {
		t.Fatalf("get comments: %v", err)
	}
	if len(comments) != 1 || comments[0].Content != "great post" {
		t.Fatalf("comments: %+v", comments)
	}

	_, err = svc.Comment(ctx, "maria", "missing-post", "hello")
	requireServiceError(t, err, CodeNotFound)
}
