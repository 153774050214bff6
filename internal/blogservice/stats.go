package blogservice

import "context"

// getBlogStats aggregates the dashboard numbers. Missing views sum to 0 and
// the recent list is the five newest posts with display fields joined in.
func (m *BlogModel) getBlogStats(ctx context.Context) (*BlogStats, error) {
	query := `
		SELECT (SELECT count(*) FROM posts),
		       (SELECT count(*) FROM authors),
		       (SELECT COALESCE(SUM(views), 0) FROM posts)`

	var stats BlogStats
	err := m.db.QueryRowContext(ctx, query).Scan(&stats.TotalPosts, &stats.TotalAuthors, &stats.TotalViews)
	if err != nil {
		return nil, err
	}

	recent, _, err := m.getPosts(ctx, PostFilters{Page: 1, Limit: 5})
	if err != nil {
		return nil, err
	}

	stats.RecentPosts = make([]UIPost, 0, len(recent))
	for i := range recent {
		stats.RecentPosts = append(stats.RecentPosts, toUIPost(&recent[i]))
	}

	return &stats, nil
}
