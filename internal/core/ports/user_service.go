package ports

import "context"

// UserProfile is the client-visible projection of a user. The field set is an
// allow-list: anything added to the domain entity stays internal until it is
// explicitly added here.
type UserProfile struct {
	ID             string  `json:"id"`
	Username       string  `json:"username"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	IsAdmin        bool    `json:"isAdmin"`
	Bio            *string `json:"bio"`
	ProfilePicture *string `json:"profile_picture"`
}

// UserDetail is a profile plus the relation views used by profile pages.
type UserDetail struct {
	UserProfile
	Followers []string `json:"followers"`
	Following []string `json:"following"`
}

// FollowAction names the outcome of a follow toggle.
type FollowAction string

const (
	FollowActionFollowed   FollowAction = "followed"
	FollowActionUnfollowed FollowAction = "unfollowed"
)

type FollowResult struct {
	Action FollowAction `json:"action"`
	Target UserProfile  `json:"target"`
}

type UserService interface {
	Get(ctx context.Context, id string) (*UserDetail, error)
	List(ctx context.Context, limit int) ([]UserProfile, error)
	Search(ctx context.Context, query string, limit int) ([]UserProfile, error)
	FollowToggle(ctx context.Context, actorID, targetID string) (*FollowResult, error)
	Followers(ctx context.Context, id string) ([]UserProfile, error)
	Following(ctx context.Context, id string) ([]UserProfile, error)
}
