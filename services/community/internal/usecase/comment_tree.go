package usecase

import (
	"sort"

	"community-feed/services/community/internal/entity"
)

// OrphanPolicy decides where a comment goes when its parent is not among the
// records being assembled.
type OrphanPolicy int

const (
	// OrphansAtRoot keeps orphans visible as top-level comments.
	OrphansAtRoot OrphanPolicy = iota
	// OrphansDropped leaves orphans and their replies out of the tree.
	OrphansDropped
)

// BuildCommentTree assembles the flat per-post records into a forest. It runs
// in linear time after sorting: every node is indexed by id, then attached to
// its parent in a second pass. Roots and every replies list are ordered by
// (created_at, id). The input slice is not modified.
func BuildCommentTree(records []*entity.CommentRecord, policy OrphanPolicy) []*entity.CommentNode {
	ordered := make([]*entity.CommentRecord, 0, len(records))
	for _, rec := range records {
		if rec != nil {
			ordered = append(ordered, rec)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	index := make(map[string]*entity.CommentNode, len(ordered))
	nodes := make([]*entity.CommentNode, 0, len(ordered))
	for _, rec := range ordered {
		if _, seen := index[rec.ID]; seen {
			continue
		}
		node := newCommentNode(rec)
		index[rec.ID] = node
		nodes = append(nodes, node)
	}

	roots := make([]*entity.CommentNode, 0)
	for _, node := range nodes {
		if node.ParentID == nil || *node.ParentID == "" {
			roots = append(roots, node)
			continue
		}

		if parent, ok := index[*node.ParentID]; ok && parent != node {
			parent.Replies = append(parent.Replies, node)
			continue
		}

		if policy == OrphansAtRoot {
			roots = append(roots, node)
		}
	}

	return roots
}

func newCommentNode(rec *entity.CommentRecord) *entity.CommentNode {
	return &entity.CommentNode{
		ID:        rec.ID,
		PostID:    rec.PostID,
		ParentID:  rec.ParentID,
		Author:    rec.Author,
		Text:      rec.Text,
		CreatedAt: rec.CreatedAt,
		LikeCount: rec.LikeCount,
		IsLiked:   rec.IsLiked,
		Replies:   make([]*entity.CommentNode, 0),
	}
}

type walkFrame struct {
	node  *entity.CommentNode
	depth int
}

// WalkCommentTree visits every node in pre-order with its depth (roots are
// depth 0). It keeps its own stack, so deep reply chains cannot exhaust the
// goroutine stack.
func WalkCommentTree(roots []*entity.CommentNode, visit func(node *entity.CommentNode, depth int)) {
	stack := make([]walkFrame, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, walkFrame{node: roots[i]})
	}

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		visit(frame.node, frame.depth)

		replies := frame.node.Replies
		for i := len(replies) - 1; i >= 0; i-- {
			stack = append(stack, walkFrame{node: replies[i], depth: frame.depth + 1})
		}
	}
}

// SubtreeIDs returns the id of the comment and of every reply beneath it, in
// pre-order. It returns nil when the comment is not in the forest.
func SubtreeIDs(roots []*entity.CommentNode, commentID string) []string {
	var target *entity.CommentNode
	WalkCommentTree(roots, func(node *entity.CommentNode, _ int) {
		if target == nil && node.ID == commentID {
			target = node
		}
	})
	if target == nil {
		return nil
	}

	var ids []string
	WalkCommentTree([]*entity.CommentNode{target}, func(node *entity.CommentNode, _ int) {
		ids = append(ids, node.ID)
	})
	return ids
}
