package mongo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pixelgram/social-api/internal/core/domain"
)

const userCollection = "users"

// MongoUserRepository persists accounts and the following relation. The
// document stores only the forward relation (following); followers are
// answered by querying the inverse, never materialised.
type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(userCollection)}
}

// EnsureIndexes creates the unique indexes backing the username/email
// invariants plus the inverse-lookup index for followers queries. Call once
// at startup.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "following", Value: 1}},
		},
	})
	if err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}
	return nil
}

type mongoUser struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty"`
	Username       string               `bson:"username"`
	Name           string               `bson:"name"`
	Email          string               `bson:"email"`
	PasswordHash   string               `bson:"password_hash"`
	Bio            string               `bson:"bio,omitempty"`
	ProfilePicture string               `bson:"profile_picture,omitempty"`
	IsStaff        bool                 `bson:"is_staff"`
	Following      []primitive.ObjectID `bson:"following,omitempty"`
	CreatedAt      int64                `bson:"created_at"`
	UpdatedAt      int64                `bson:"updated_at"`
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	doc := mongoUser{
		Username:       user.Username,
		Name:           user.Name,
		Email:          user.Email,
		PasswordHash:   user.PasswordHash,
		Bio:            user.Bio,
		ProfilePicture: user.ProfilePicture,
		IsStaff:        user.IsStaff,
		CreatedAt:      user.CreatedAt.Unix(),
		UpdatedAt:      user.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	return r.FindByID(ctx, id.Hex())
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) List(ctx context.Context, limit int) ([]domain.User, error) {
	opts := options.Find().
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.findMany(ctx, bson.M{}, opts)
}

// Search matches username or display name, case-insensitive substring.
func (r *MongoUserRepository) Search(ctx context.Context, query string, limit int) ([]domain.User, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"username": pattern},
		bson.M{"name": pattern},
	}}
	return r.findMany(ctx, filter, options.Find().SetLimit(int64(limit)))
}

func (r *MongoUserRepository) AddFollowing(ctx context.Context, userID, targetID string) error {
	return r.updateFollowing(ctx, userID, targetID, "$addToSet")
}

func (r *MongoUserRepository) RemoveFollowing(ctx context.Context, userID, targetID string) error {
	return r.updateFollowing(ctx, userID, targetID, "$pull")
}

// Followers returns every user whose following set contains userID. This is
// the derived inverse view of the relation.
func (r *MongoUserRepository) Followers(ctx context.Context, userID string) ([]domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findMany(ctx, bson.M{"following": oid}, options.Find())
}

func (r *MongoUserRepository) Following(ctx context.Context, userID string) ([]domain.User, error) {
	user, err := r.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(user.Following))
	for _, id := range user.Following {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		ids = append(ids, oid)
	}
	if len(ids) == 0 {
		return []domain.User{}, nil
	}
	return r.findMany(ctx, bson.M{"_id": bson.M{"$in": ids}}, options.Find())
}

func (r *MongoUserRepository) updateFollowing(ctx context.Context, userID, targetID, op string) error {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return domain.ErrUserNotFound
	}
	tid, err := primitive.ObjectIDFromHex(targetID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	res, err := r.coll.UpdateByID(ctx, uid, bson.M{
		op:     bson.M{"following": tid},
		"$set": bson.M{"updated_at": time.Now().UTC().Unix()},
	})
	if err != nil {
		return fmt.Errorf("update following: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, filter).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	user := toDomain(mu)
	return &user, nil
}

func (r *MongoUserRepository) findMany(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.User, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cur.Close(ctx)

	var users []domain.User
	for cur.Next(ctx) {
		var mu mongoUser
		if err := cur.Decode(&mu); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, toDomain(mu))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func toDomain(mu mongoUser) domain.User {
	following := make([]string, 0, len(mu.Following))
	for _, oid := range mu.Following {
		following = append(following, oid.Hex())
	}
	return domain.User{
		ID:             mu.ID.Hex(),
		Username:       mu.Username,
		Name:           mu.Name,
		Email:          mu.Email,
		PasswordHash:   mu.PasswordHash,
		Bio:            mu.Bio,
		ProfilePicture: mu.ProfilePicture,
		IsStaff:        mu.IsStaff,
		Following:      following,
		CreatedAt:      unixToTime(mu.CreatedAt),
		UpdatedAt:      unixToTime(mu.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
