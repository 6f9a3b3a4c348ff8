package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ilyahahaha/vneshtata-new/internal/models"
)

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func (r *PostRepository) Create(ctx context.Context, post models.Post) error {
	const query = `
		INSERT INTO posts (id, author_id, content, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query, post.ID, post.AuthorID, post.Content, post.CreatedAt)
	return translateError(err)
}

// ListFeed returns posts authored by viewerID or by anyone viewerID
// follows, newest first, with author display fields and the complete
// like list attached.
func (r *PostRepository) ListFeed(ctx context.Context, viewerID string, skip, take int) ([]models.FeedPost, error) {
	const query = `
		SELECT p.id, p.author_id, p.content, p.created_at,
		       u.id, u.first_name, u.last_name, u.picture
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.author_id = $1
		   OR p.author_id IN (SELECT following_id FROM follows WHERE follower_id = $1)
		ORDER BY p.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, viewerID, take, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]models.FeedPost, 0)
	postIDs := make([]string, 0)
	for rows.Next() {
		var post models.FeedPost
		if err := rows.Scan(
			&post.ID,
			&post.AuthorID,
			&post.Content,
			&post.CreatedAt,
			&post.Author.ID,
			&post.Author.FirstName,
			&post.Author.LastName,
			&post.Author.Picture,
		); err != nil {
			return nil, err
		}
		post.Likes = make([]models.UserSummary, 0)
		posts = append(posts, post)
		postIDs = append(postIDs, post.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return posts, nil
	}

	likes, err := r.listLikes(ctx, postIDs)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if users, ok := likes[posts[i].ID]; ok {
			posts[i].Likes = users
		}
	}
	return posts, nil
}

func (r *PostRepository) listLikes(ctx context.Context, postIDs []string) (map[string][]models.UserSummary, error) {
	const query = `
		SELECT l.post_id, u.id, u.first_name, u.last_name, u.picture
		FROM likes l
		JOIN users u ON u.id = l.liked_by_id
		WHERE l.post_id = ANY($1)
	`

	rows, err := r.pool.Query(ctx, query, postIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	likes := make(map[string][]models.UserSummary)
	for rows.Next() {
		var postID string
		var user models.UserSummary
		if err := rows.Scan(&postID, &user.ID, &user.FirstName, &user.LastName, &user.Picture); err != nil {
			return nil, err
		}
		likes[postID] = append(likes[postID], user)
	}
	return likes, rows.Err()
}

// CreateLike inserts the (post, user) edge if absent; liking a missing
// post surfaces as ErrMissingReference via the foreign key.
func (r *PostRepository) CreateLike(ctx context.Context, postID, userID string) (bool, error) {
	const query = `
		INSERT INTO likes (post_id, liked_by_id)
		VALUES ($1, $2)
		ON CONFLICT (post_id, liked_by_id) DO NOTHING
	`

	cmd, err := r.pool.Exec(ctx, query, postID, userID)
	if err != nil {
		return false, translateError(err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *PostRepository) DeleteLike(ctx context.Context, postID, userID string) (bool, error) {
	const query = `DELETE FROM likes WHERE post_id = $1 AND liked_by_id = $2`

	cmd, err := r.pool.Exec(ctx, query, postID, userID)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *PostRepository) CountLikes(ctx context.Context, postID string) (int, error) {
	const query = `SELECT COUNT(*) FROM likes WHERE post_id = $1`

	var count int
	if err := r.pool.QueryRow(ctx, query, postID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostRepository) CreateComment(ctx context.Context, comment models.Comment) error {
	const query = `
		INSERT INTO comments (id, post_id, author_id, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		comment.ID,
		comment.PostID,
		comment.AuthorID,
		comment.Content,
		comment.CreatedAt,
	)
	return translateError(err)
}

// ListComments returns every comment on a post, oldest first. Comments
// are not paginated.
func (r *PostRepository) ListComments(ctx context.Context, postID string) ([]models.PostComment, error) {
	const query = `
		SELECT c.id, c.post_id, c.author_id, c.content, c.created_at,
		       u.id, u.first_name, u.last_name, u.picture
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]models.PostComment, 0)
	for rows.Next() {
		var comment models.PostComment
		if err := rows.Scan(
			&comment.ID,
			&comment.PostID,
			&comment.AuthorID,
			&comment.Content,
			&comment.CreatedAt,
			&comment.Author.ID,
			&comment.Author.FirstName,
			&comment.Author.LastName,
			&comment.Author.Picture,
		); err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}
