package views

import "context"

const defaultLeaderboardLimit = 10

// Leaderboard returns one page of ranked players.
func (c *Client) Leaderboard(ctx context.Context, q LeaderboardQuery) LeaderboardView {
	return c.leaderboard(ctx, q).View
}

func (q LeaderboardQuery) withDefaults() LeaderboardQuery {
	if q.Limit <= 0 {
		q.Limit = defaultLeaderboardLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return q
}

func (c *Client) leaderboard(ctx context.Context, q LeaderboardQuery) outcome[LeaderboardView] {
	q = q.withDefaults()

	return read(ctx, c, "leaderboard", LeaderboardKey(q),
		map[string]any{"limit": q.Limit, "offset": q.Offset},
		func(ctx context.Context) (LeaderboardView, error) {
			rows, err := c.idx.FetchLeaderboard(ctx, q.Limit, q.Offset)
			if err != nil {
				return LeaderboardView{}, err
			}

			view := c.emptyLeaderboard()
			for _, r := range rows {
				view.Entries = append(view.Entries, LeaderboardEntry{
					Address:    strOr(r.Address, noOwner),
					Name:       strOr(r.Name, ""),
					Points:     r.Points,
					Rank:       r.Rank,
					RealmCount: r.RealmCount,
				})
			}
			view.TotalPlayers = len(view.Entries)
			return view, nil
		},
		c.emptyLeaderboard,
	)
}

func (c *Client) emptyLeaderboard() LeaderboardView {
	return LeaderboardView{
		Entries:       []LeaderboardEntry{},
		LastUpdatedAt: c.now().Unix(),
	}
}
