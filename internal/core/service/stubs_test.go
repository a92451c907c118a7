package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pixelgram/social-api/internal/core/domain"
)

// stubUserRepo is an in-memory UserRepository used across service tests.
type stubUserRepo struct {
	users   map[string]*domain.User // keyed by id
	nextID  int
	creates int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Following = append([]string(nil), u.Following...)
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.creates++
	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("user_%d", r.nextID)
	r.users[created.ID] = created
	return cloneUser(created), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, limit int) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		if len(out) == limit {
			break
		}
		out = append(out, *cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Search(_ context.Context, query string, limit int) ([]domain.User, error) {
	q := strings.ToLower(query)
	var out []domain.User
	for _, u := range r.users {
		if len(out) == limit {
			break
		}
		if strings.Contains(strings.ToLower(u.Username), q) || strings.Contains(strings.ToLower(u.Name), q) {
			out = append(out, *cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) AddFollowing(_ context.Context, userID, targetID string) error {
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	if !u.Follows(targetID) {
		u.Following = append(u.Following, targetID)
	}
	return nil
}

func (r *stubUserRepo) RemoveFollowing(_ context.Context, userID, targetID string) error {
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	kept := u.Following[:0]
	for _, id := range u.Following {
		if id != targetID {
			kept = append(kept, id)
		}
	}
	u.Following = kept
	return nil
}

// Followers derives the inverse of the following relation, like the Mongo
// implementation does with a query.
func (r *stubUserRepo) Followers(_ context.Context, userID string) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		if u.Follows(userID) {
			out = append(out, *cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) Following(_ context.Context, userID string) ([]domain.User, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	var out []domain.User
	for _, id := range u.Following {
		if followed, ok := r.users[id]; ok {
			out = append(out, *cloneUser(followed))
		}
	}
	return out, nil
}

// stubDenylist is an in-memory TokenDenylist.
type stubDenylist struct {
	revoked map[string]time.Time
}

func newStubDenylist() *stubDenylist {
	return &stubDenylist{revoked: make(map[string]time.Time)}
}

func (d *stubDenylist) Revoke(_ context.Context, tokenID string, until time.Time) error {
	d.revoked[tokenID] = until
	return nil
}

func (d *stubDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := d.revoked[tokenID]
	return ok, nil
}

// stubMedia resolves picture references to predictable URLs.
type stubMedia struct {
	err error
}

func (m *stubMedia) ResolveURL(publicID string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return "https://media.example.com/" + publicID, nil
}
