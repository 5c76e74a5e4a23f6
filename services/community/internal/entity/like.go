package entity

import (
	"errors"
	"time"
)

var ErrInvalidLikeTarget = errors.New("like must target exactly one of post or comment")

type TargetKind string

const (
	TargetPost    TargetKind = "post"
	TargetComment TargetKind = "comment"
)

// LikeTarget is either a post or a comment, never both and never neither.
// The zero value is invalid; build one with PostTarget, CommentTarget or
// ParseLikeTarget.
type LikeTarget struct {
	kind TargetKind
	id   string
}

func PostTarget(postID string) LikeTarget {
	return LikeTarget{kind: TargetPost, id: postID}
}

func CommentTarget(commentID string) LikeTarget {
	return LikeTarget{kind: TargetComment, id: commentID}
}

// ParseLikeTarget builds a target from two optional references as they come
// off the wire.
func ParseLikeTarget(postID, commentID *string) (LikeTarget, error) {
	hasPost := postID != nil && *postID != ""
	hasComment := commentID != nil && *commentID != ""

	switch {
	case hasPost && !hasComment:
		return PostTarget(*postID), nil
	case hasComment && !hasPost:
		return CommentTarget(*commentID), nil
	default:
		return LikeTarget{}, ErrInvalidLikeTarget
	}
}

func (t LikeTarget) Kind() TargetKind { return t.kind }

func (t LikeTarget) ID() string { return t.id }

func (t LikeTarget) Validate() error {
	if t.id == "" || (t.kind != TargetPost && t.kind != TargetComment) {
		return ErrInvalidLikeTarget
	}
	return nil
}

// PostID and CommentID project the target onto the two nullable columns.
func (t LikeTarget) PostID() *string {
	if t.kind != TargetPost {
		return nil
	}
	id := t.id
	return &id
}

func (t LikeTarget) CommentID() *string {
	if t.kind != TargetComment {
		return nil
	}
	id := t.id
	return &id
}

func (t LikeTarget) String() string {
	return string(t.kind) + ":" + t.id
}

type Like struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Target    LikeTarget `json:"-"`
	CreatedAt time.Time  `json:"created_at"`
}
