package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pixelgram/social-api/internal/core/domain"
	"github.com/pixelgram/social-api/internal/core/ports"
)

const defaultListLimit = 20

// UserService implements profile reads, discovery, and the follow relation.
type UserService struct {
	repo      ports.UserRepository
	presenter *ProfilePresenter
	log       zerolog.Logger
}

func NewUserService(repo ports.UserRepository, presenter *ProfilePresenter, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, presenter: presenter, log: log}
}

// Get returns the presented profile plus follower/following id lists.
// Followers are derived by the repository from the inverse of the following
// relation; they are never read from the user record itself.
func (s *UserService) Get(ctx context.Context, id string) (*ports.UserDetail, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	profile, err := s.presenter.Present(user)
	if err != nil {
		return nil, err
	}

	followers, err := s.repo.Followers(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &ports.UserDetail{
		UserProfile: profile,
		Followers:   make([]string, 0, len(followers)),
		Following:   make([]string, 0, len(user.Following)),
	}
	for _, f := range followers {
		detail.Followers = append(detail.Followers, f.ID)
	}
	detail.Following = append(detail.Following, user.Following...)

	return detail, nil
}

func (s *UserService) List(ctx context.Context, limit int) ([]ports.UserProfile, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	users, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	return s.presenter.PresentAll(users)
}

func (s *UserService) Search(ctx context.Context, query string, limit int) ([]ports.UserProfile, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	users, err := s.repo.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return s.presenter.PresentAll(users)
}

// FollowToggle follows the target when absent from the actor's following set
// and unfollows it when present. Self-follows are rejected.
func (s *UserService) FollowToggle(ctx context.Context, actorID, targetID string) (*ports.FollowResult, error) {
	if actorID == targetID {
		return nil, domain.ErrSelfFollow
	}

	actor, err := s.repo.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	target, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	action := ports.FollowActionFollowed
	if actor.Follows(targetID) {
		action = ports.FollowActionUnfollowed
		err = s.repo.RemoveFollowing(ctx, actorID, targetID)
	} else {
		err = s.repo.AddFollowing(ctx, actorID, targetID)
	}
	if err != nil {
		return nil, err
	}

	profile, err := s.presenter.Present(target)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("actor_id", actorID).
		Str("target_id", targetID).
		Str("action", string(action)).
		Msg("follow toggled")

	return &ports.FollowResult{Action: action, Target: profile}, nil
}

func (s *UserService) Followers(ctx context.Context, id string) ([]ports.UserProfile, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	users, err := s.repo.Followers(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.presenter.PresentAll(users)
}

func (s *UserService) Following(ctx context.Context, id string) ([]ports.UserProfile, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	users, err := s.repo.Following(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.presenter.PresentAll(users)
}
