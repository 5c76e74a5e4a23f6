package usecase

import (
	"sort"
	"time"

	"community-feed/services/community/internal/entity"
)

const (
	PostLikeWeight    = 5
	CommentLikeWeight = 1

	DefaultLeaderboardWindow = 24 * time.Hour
	DefaultLeaderboardLimit  = 5
	MaxLeaderboardLimit      = 100
)

// AggregateKarma scores every recipient of a like created at or after since,
// drops users without positive karma, and ranks by karma descending with the
// user id ascending as the tie-break. At most limit entries are returned; a
// negative limit returns them all.
func AggregateKarma(events []entity.KarmaEvent, since time.Time, limit int) []entity.LeaderboardEntry {
	tallies := make(map[string]*entity.LeaderboardEntry)
	for _, ev := range events {
		if ev.CreatedAt.Before(since) {
			continue
		}

		var weight int64
		switch ev.Source {
		case entity.KarmaFromPost:
			weight = PostLikeWeight
		case entity.KarmaFromComment:
			weight = CommentLikeWeight
		default:
			continue
		}

		entry, ok := tallies[ev.UserID]
		if !ok {
			entry = &entity.LeaderboardEntry{UserID: ev.UserID, Username: ev.Username}
			tallies[ev.UserID] = entry
		}
		entry.Karma += weight
		if ev.Source == entity.KarmaFromPost {
			entry.PostLikes++
		} else {
			entry.CommentLikes++
		}
	}

	ranked := make([]entity.LeaderboardEntry, 0, len(tallies))
	for _, entry := range tallies {
		if entry.Karma > 0 {
			ranked = append(ranked, *entry)
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Karma != ranked[j].Karma {
			return ranked[i].Karma > ranked[j].Karma
		}
		return ranked[i].UserID < ranked[j].UserID
	})

	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
