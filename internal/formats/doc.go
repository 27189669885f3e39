package formats

// Package formats turns the raw format list from the metadata fetch into a
// deduplicated, ranked, user-presentable catalog of download options.
