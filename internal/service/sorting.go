package service

import "github.com/emilythestrangee/videotube/backend/internal/paging"

// Sortable fields per listing. Both snake_case and camelCase spellings are
// accepted.
var (
	videoSorts = paging.NewSortKeys(map[string]string{
		"created_at": "videos.created_at",
		"createdAt":  "videos.created_at",
		"updated_at": "videos.updated_at",
		"updatedAt":  "videos.updated_at",
		"views":      "videos.views",
		"title":      "videos.title",
		"duration":   "videos.duration",
		"likes":      "likes_count",
	}, paging.Sort{Column: "videos.created_at", Desc: true})

	commentSorts = paging.NewSortKeys(map[string]string{
		"created_at": "comments.created_at",
		"createdAt":  "comments.created_at",
		"likes":      "likes_count",
	}, paging.Sort{Column: "comments.created_at", Desc: true})

	tweetSorts = paging.NewSortKeys(map[string]string{
		"created_at": "tweets.created_at",
		"createdAt":  "tweets.created_at",
		"likes":      "likes_count",
	}, paging.Sort{Column: "tweets.created_at", Desc: true})
)
