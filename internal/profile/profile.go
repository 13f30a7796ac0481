// Package profile reduces joined user rows to the public owner shape
// embedded in content responses.
package profile

import (
	"github.com/google/uuid"

	"github.com/emilythestrangee/videotube/backend/internal/models"
)

// Project returns the public profile of the first joined user, or nil when
// the join matched nothing.
func Project(joined []models.User) *models.PublicProfile {
	if len(joined) == 0 {
		return nil
	}
	p := Of(joined[0])
	return &p
}

func Of(u models.User) models.PublicProfile {
	return models.PublicProfile{
		ID:       u.ID,
		Username: u.Username,
		Avatar:   u.Avatar,
	}
}

// Joined receives the columns a one-to-one users lookup adds to a row. Embed
// it with an embeddedPrefix matching the lookup alias, e.g.
//
//	Owner profile.Joined `gorm:"embedded;embeddedPrefix:owner__"`
//
// All fields are NULL when a left join found no user.
type Joined struct {
	ID       *uuid.UUID
	Username *string
	Avatar   *string
}

// Users returns the joined user as a zero or one element slice.
func (j Joined) Users() []models.User {
	if j.ID == nil {
		return nil
	}
	u := models.User{Base: models.Base{ID: *j.ID}}
	if j.Username != nil {
		u.Username = *j.Username
	}
	if j.Avatar != nil {
		u.Avatar = *j.Avatar
	}
	return []models.User{u}
}

// Profile is shorthand for Project(j.Users()).
func (j Joined) Profile() *models.PublicProfile {
	return Project(j.Users())
}
