package entity

import "time"

type KarmaSource string

const (
	KarmaFromPost    KarmaSource = "post"
	KarmaFromComment KarmaSource = "comment"
)

// KarmaEvent is one like as seen by its recipient: the author of the liked
// post or comment.
type KarmaEvent struct {
	Source    KarmaSource
	UserID    string
	Username  string
	CreatedAt time.Time
}

type LeaderboardEntry struct {
	UserID       string `json:"id"`
	Username     string `json:"username"`
	Karma        int64  `json:"karma"`
	PostLikes    int64  `json:"post_likes"`
	CommentLikes int64  `json:"comment_likes"`
}
