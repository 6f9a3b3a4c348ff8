package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/ilyahahaha/vneshtata-new/internal/ids"
	"github.com/ilyahahaha/vneshtata-new/internal/models"
	"github.com/ilyahahaha/vneshtata-new/internal/repository"
)

// Feed pages are fixed at ten posts; the client paginates with skip.
const feedPageSize = 10

type postStore interface {
	Create(ctx context.Context, post models.Post) error
	ListFeed(ctx context.Context, viewerID string, skip, take int) ([]models.FeedPost, error)
	CreateLike(ctx context.Context, postID, userID string) (bool, error)
	DeleteLike(ctx context.Context, postID, userID string) (bool, error)
	CountLikes(ctx context.Context, postID string) (int, error)
	CreateComment(ctx context.Context, comment models.Comment) error
	ListComments(ctx context.Context, postID string) ([]models.PostComment, error)
}

type PostService struct {
	posts postStore
	log   zerolog.Logger
}

func NewPostService(posts postStore, log zerolog.Logger) *PostService {
	return &PostService{posts: posts, log: log}
}

func (s *PostService) GetFeed(ctx context.Context, viewerID string, skip int) ([]models.FeedPost, error) {
	if skip < 0 {
		skip = 0
	}

	posts, err := s.posts.ListFeed(ctx, viewerID, skip, feedPageSize)
	if err != nil {
		return nil, Internal(err)
	}
	return posts, nil
}

func (s *PostService) AddPost(ctx context.Context, authorID, content string) (models.Post, error) {
	post := models.Post{
		ID:        ids.New(),
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return models.Post{}, Internal(err)
	}
	return post, nil
}

// Like toggles the (post, user) edge per the dislike flag and returns
// the resulting like count.
func (s *PostService) Like(ctx context.Context, userID, postID string, dislike bool) (int, error) {
	if dislike {
		if _, err := s.posts.DeleteLike(ctx, postID, userID); err != nil {
			return 0, Internal(err)
		}
	} else {
		created, err := s.posts.CreateLike(ctx, postID, userID)
		if err != nil {
			if errors.Is(err, repository.ErrMissingReference) {
				return 0, NotFound("Post with this ID not found")
			}
			return 0, Internal(err)
		}
		if !created {
			return 0, Conflict("You already liked this post")
		}
	}

	count, err := s.posts.CountLikes(ctx, postID)
	if err != nil {
		return 0, Internal(err)
	}
	return count, nil
}

func (s *PostService) Comment(ctx context.Context, authorID, postID, content string) (models.Comment, error) {
	comment := models.Comment{
		ID:        ids.New(),
		PostID:    postID,
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.posts.CreateComment(ctx, comment); err != nil {
		if errors.Is(err, repository.ErrMissingReference) {
			return models.Comment{}, NotFound("Post with this ID not found")
		}
		return models.Comment{}, Internal(err)
	}
	return comment, nil
}

func (s *PostService) GetComments(ctx context.Context, postID string) ([]models.PostComment, error) {
	comments, err := s.posts.ListComments(ctx, postID)
	if err != nil {
		return nil, Internal(err)
	}
	return comments, nil
}
