package persistent

import (
	"context"
	"database/sql"
	"time"

	"community-feed/services/community/internal/entity"

	"gorm.io/gorm"
)

type KarmaRepository interface {
	EventsSince(ctx context.Context, since time.Time) ([]entity.KarmaEvent, error)
}

type karmaRepository struct {
	db *gorm.DB
}

func NewKarmaRepository(db *gorm.DB) KarmaRepository {
	return &karmaRepository{db: db}
}

type karmaEventRow struct {
	Source    string
	UserID    string
	Username  string
	CreatedAt time.Time
}

// karmaEventsQuery projects every like in the window onto the author of the
// liked content. Likes by authors on their own content still count.
const karmaEventsQuery = `
SELECT 'post' AS source, p.author_id AS user_id, u.username, l.created_at
FROM likes l
JOIN posts p ON p.id = l.post_id
JOIN users u ON u.id = p.author_id
WHERE l.post_id IS NOT NULL AND l.created_at >= @since
UNION ALL
SELECT 'comment' AS source, c.author_id AS user_id, u.username, l.created_at
FROM likes l
JOIN comments c ON c.id = l.comment_id
JOIN users u ON u.id = c.author_id
WHERE l.comment_id IS NOT NULL AND l.created_at >= @since`

func (r *karmaRepository) EventsSince(ctx context.Context, since time.Time) ([]entity.KarmaEvent, error) {
	var rows []karmaEventRow
	if err := r.db.WithContext(ctx).Raw(karmaEventsQuery, sql.Named("since", since)).Scan(&rows).Error; err != nil {
		return nil, err
	}

	events := make([]entity.KarmaEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, entity.KarmaEvent{
			Source:    entity.KarmaSource(row.Source),
			UserID:    row.UserID,
			Username:  row.Username,
			CreatedAt: row.CreatedAt,
		})
	}
	return events, nil
}
