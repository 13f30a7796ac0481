package store

import (
	"github.com/google/uuid"

	"github.com/emilythestrangee/videotube/backend/internal/models"
	"github.com/emilythestrangee/videotube/backend/internal/paging"
	"github.com/emilythestrangee/videotube/backend/internal/pipeline"
)

var (
	videoColumns   = []string{"id", "owner_id", "title", "description", "video_file", "thumbnail", "duration", "views", "is_published", "created_at", "updated_at"}
	commentColumns = []string{"id", "video_id", "owner_id", "content", "created_at", "updated_at"}
	tweetColumns   = []string{"id", "owner_id", "content", "created_at", "updated_at"}
)

// ownerLookup joins the public columns of the user referenced by local.
func ownerLookup(as, local string) pipeline.Lookup {
	return pipeline.Lookup{
		From:         "users",
		As:           as,
		LocalField:   local,
		ForeignField: "id",
		Fields:       []string{"id", "username", "avatar"},
		Mode:         pipeline.One,
	}
}

// likesLookup relates the like rows targeting each source row.
func likesLookup(kind models.TargetKind) pipeline.Lookup {
	return pipeline.Lookup{
		From:         "likes",
		As:           "likes",
		LocalField:   "id",
		ForeignField: "target_id",
		Where:        "target_kind = ?",
		Args:         []interface{}{string(kind)},
	}
}

// engagement derives likes_count and is_liked from a likesLookup and surfaces
// the owner lookup.
func engagement(viewer uuid.UUID) []pipeline.Stage {
	return []pipeline.Stage{
		pipeline.Size{Lookup: "likes", As: "likes_count"},
		pipeline.Contains{Lookup: "likes", Field: "liked_by_id", Value: viewerValue(viewer), As: "is_liked"},
		pipeline.First{Lookup: "owner"},
	}
}

// viewerValue turns an anonymous viewer into a nil Contains value.
func viewerValue(viewer uuid.UUID) interface{} {
	if viewer == uuid.Nil {
		return nil
	}
	return viewer
}

// visibleTo keeps published videos plus the viewer's own.
func visibleTo(viewer uuid.UUID) pipeline.Match {
	return pipeline.Match{
		Where: "videos.is_published OR videos.owner_id = ?",
		Args:  []interface{}{viewer},
	}
}

func sortStage(s paging.Sort) pipeline.Sort {
	return pipeline.Sort{Column: s.Column, Desc: s.Desc}
}

func pageStage(p paging.Page) pipeline.Page {
	return pipeline.Page{Skip: p.Skip, Limit: p.Limit}
}
