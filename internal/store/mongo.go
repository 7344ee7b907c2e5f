package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/harentsoaR/tabibi-api/internal/models"
)

// MongoStore keeps each user in one document of the users collection, with
// the doctor profile embedded. Every write touches a single document.
type MongoStore struct {
	client *mongo.Client
	users  *mongo.Collection
}

func OpenMongo(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	s := &MongoStore{
		client: client,
		users:  client.Database(database).Collection("users"),
	}

	_, err = s.users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userType", Value: 1}, {Key: "name", Value: 1}}},
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo indexes: %w", err)
	}
	return s, nil
}

func (s *MongoStore) CreateUser(ctx context.Context, u *models.User) error {
	now := time.Now().UTC()
	u.CreatedAt, u.UpdatedAt = now, now
	if u.Profile != nil {
		u.Profile.UserID = u.ID
		u.Profile.CreatedAt, u.Profile.UpdatedAt = now, now
	}

	if _, err := s.users.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *MongoStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"email": email}, "user by email")
}

func (s *MongoStore) UserByID(ctx context.Context, id string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"_id": id}, "user by id")
}

func (s *MongoStore) DoctorByID(ctx context.Context, id string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"_id": id, "userType": models.UserTypeDoctor}, "doctor by id")
}

func (s *MongoStore) UpdateAccount(ctx context.Context, id string, upd AccountUpdate) error {
	now := time.Now().UTC()
	set := bson.M{
		"name":      literal(upd.Name),
		"userType":  literal(upd.UserType),
		"updatedAt": now,
	}
	if upd.PasswordHash != "" {
		set["password"] = literal(upd.PasswordHash)
	}
	if upd.Location != nil {
		set["latitude"] = upd.Location.Latitude
		set["longitude"] = upd.Location.Longitude
	}

	var pipeline mongo.Pipeline
	if upd.UserType == models.UserTypeDoctor {
		for k, v := range profileSet(upd.Profile, now) {
			set[k] = v
		}
		pipeline = mongo.Pipeline{{{Key: "$set", Value: set}}}
	} else {
		pipeline = mongo.Pipeline{
			{{Key: "$set", Value: set}},
			{{Key: "$unset", Value: "profile"}},
		}
	}

	res, err := s.users.UpdateOne(ctx, bson.M{"_id": id}, pipeline)
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// profileSet writes the embedded profile, keeping createdAt when one exists.
func profileSet(f models.ProfileFields, now time.Time) bson.M {
	return bson.M{
		"profile.specialization": literal(f.Specialization),
		"profile.address":        literal(f.Address),
		"profile.workingHours":   literal(f.WorkingHours),
		"profile.phone":          literal(f.Phone),
		"profile.updatedAt":      now,
		"profile.createdAt":      bson.M{"$ifNull": bson.A{"$profile.createdAt", now}},
	}
}

// literal stops update pipelines from reading "$..." strings as field paths.
func literal(v string) bson.M {
	return bson.M{"$literal": v}
}

func (s *MongoStore) DeleteUser(ctx context.Context, id string) error {
	res, err := s.users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) ListDoctors(ctx context.Context, q string) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := s.users.Find(ctx, doctorFilter(q), opts)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	defer cursor.Close(ctx)

	doctors := make([]models.User, 0)
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("decode doctors: %w", err)
	}
	for i := range doctors {
		linkProfile(&doctors[i])
	}
	return doctors, nil
}

// doctorFilter matches doctors whose name, specialization or email contains q,
// ignoring case. q is matched literally.
func doctorFilter(q string) bson.M {
	filter := bson.M{"userType": models.UserTypeDoctor}
	if q = strings.TrimSpace(q); q != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"profile.specialization": re},
			bson.M{"email": re},
		}
	}
	return filter
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) findOne(ctx context.Context, filter bson.M, op string) (*models.User, error) {
	var u models.User
	if err := s.users.FindOne(ctx, filter).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	linkProfile(&u)
	return &u, nil
}

// the embedded profile does not store its owner id
func linkProfile(u *models.User) {
	if u.Profile != nil {
		u.Profile.UserID = u.ID
	}
}
