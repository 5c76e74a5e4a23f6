package entity

import "time"

type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	ParentID  *string   `json:"parent_id"`
	AuthorID  string    `json:"author_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentRecord is one row of the flat per-post fetch: the comment plus its
// precomputed like count and the viewer's like state.
type CommentRecord struct {
	Comment
	Author    UserRef
	LikeCount int64
	IsLiked   bool
}

type CommentNode struct {
	ID        string         `json:"id"`
	PostID    string         `json:"post_id"`
	ParentID  *string        `json:"parent_id"`
	Author    UserRef        `json:"author"`
	Text      string         `json:"text"`
	CreatedAt time.Time      `json:"created_at"`
	LikeCount int64          `json:"like_count"`
	IsLiked   bool           `json:"is_liked"`
	Replies   []*CommentNode `json:"replies"`
}
