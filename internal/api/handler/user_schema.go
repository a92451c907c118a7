package handler

import "github.com/pixelgram/social-api/internal/core/ports"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// profileResponse is the allow-list projection of a user. Bio and
// profile_picture serialise as explicit nulls when absent, matching the
// presenter contract.
type profileResponse struct {
	ID             string  `json:"id"`
	Username       string  `json:"username"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	IsAdmin        bool    `json:"isAdmin"`
	Bio            *string `json:"bio"`
	ProfilePicture *string `json:"profile_picture"`
}

type userDetailResponse struct {
	profileResponse
	Followers []string `json:"followers"`
	Following []string `json:"following"`
}

type userListResponse struct {
	Data []profileResponse `json:"data"`
}

type followToggleResponse struct {
	Action string          `json:"action"`
	Target profileResponse `json:"target"`
}

func toProfileResponse(p ports.UserProfile) profileResponse {
	return profileResponse{
		ID:             p.ID,
		Username:       p.Username,
		Name:           p.Name,
		Email:          p.Email,
		IsAdmin:        p.IsAdmin,
		Bio:            p.Bio,
		ProfilePicture: p.ProfilePicture,
	}
}

func toProfileListResponse(profiles []ports.UserProfile) userListResponse {
	items := make([]profileResponse, len(profiles))
	for i, p := range profiles {
		items[i] = toProfileResponse(p)
	}
	return userListResponse{Data: items}
}

func toDetailResponse(d *ports.UserDetail) userDetailResponse {
	return userDetailResponse{
		profileResponse: toProfileResponse(d.UserProfile),
		Followers:       d.Followers,
		Following:       d.Following,
	}
}
