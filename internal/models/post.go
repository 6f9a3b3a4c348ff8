package models

import "time"

type Post struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"authorId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type Like struct {
	PostID    string `json:"postId"`
	LikedByID string `json:"likedById"`
}

type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	AuthorID  string    `json:"authorId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// FeedPost is a post joined with its author display fields and the full
// like list, the way the feed renders it.
type FeedPost struct {
	Post
	Author UserSummary   `json:"author"`
	Likes  []UserSummary `json:"likes"`
}

type PostComment struct {
	Comment
	Author UserSummary `json:"author"`
}
