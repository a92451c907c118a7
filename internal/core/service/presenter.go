package service

import (
	"fmt"

	"github.com/pixelgram/social-api/internal/core/domain"
	"github.com/pixelgram/social-api/internal/core/ports"
)

// ProfilePresenter maps a stored user to its client-visible shape. The output
// is an allow-list projection: password hash and any future internal fields
// are excluded unless added to ports.UserProfile explicitly.
//
// Two fields are derived on every call and never cached on the record:
//   - IsAdmin mirrors the staff flag at read time.
//   - ProfilePicture resolves the stored media reference to a delivery URL,
//     or nil when the user has no picture.
type ProfilePresenter struct {
	media ports.MediaResolver
}

func NewProfilePresenter(media ports.MediaResolver) *ProfilePresenter {
	return &ProfilePresenter{media: media}
}

// Present builds the outward profile for a single user.
func (p *ProfilePresenter) Present(user *domain.User) (ports.UserProfile, error) {
	profile := ports.UserProfile{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Email:    user.Email,
		IsAdmin:  user.IsStaff,
	}

	if user.Bio != "" {
		bio := user.Bio
		profile.Bio = &bio
	}

	if user.ProfilePicture != "" {
		url, err := p.media.ResolveURL(user.ProfilePicture)
		if err != nil {
			return ports.UserProfile{}, fmt.Errorf("%w: %v", domain.ErrMediaUnavailable, err)
		}
		profile.ProfilePicture = &url
	}

	return profile, nil
}

// PresentAll maps a slice of users, failing on the first resolution error.
func (p *ProfilePresenter) PresentAll(users []domain.User) ([]ports.UserProfile, error) {
	profiles := make([]ports.UserProfile, len(users))
	for i := range users {
		profile, err := p.Present(&users[i])
		if err != nil {
			return nil, err
		}
		profiles[i] = profile
	}
	return profiles, nil
}
