package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const accountsCollection = "accounts"

type accountDoc struct {
	UID          string `bson:"_id"`
	Email        string `bson:"email"`
	PasswordHash string `bson:"passwordHash"`
	DisplayName  string `bson:"displayName"`
}

// MongoService keeps accounts in their own collection with bcrypt hashes.
type MongoService struct{ db *mongo.Database }

func NewMongoService(db *mongo.Database) *MongoService {
	return &MongoService{db: db}
}

func (s *MongoService) coll() *mongo.Collection {
	return s.db.Collection(accountsCollection)
}

func (s *MongoService) CreateAccount(ctx context.Context, email, password, displayName string) (string, error) {
	if email == "" || password == "" {
		return "", errors.New("email and password are required")
	}

	count, err := s.coll().CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return "", err
	}
	if count > 0 {
		return "", fmt.Errorf("email %s is already registered", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	doc := accountDoc{
		UID:          uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  displayName,
	}
	if _, err := s.coll().InsertOne(ctx, doc); err != nil {
		return "", err
	}
	return doc.UID, nil
}

func (s *MongoService) LookupAccount(ctx context.Context, uid string) (Account, error) {
	var doc accountDoc
	if err := s.coll().FindOne(ctx, bson.M{"_id": uid}).Decode(&doc); err != nil {
		return Account{}, err
	}
	return Account{UID: doc.UID, Email: doc.Email, DisplayName: doc.DisplayName}, nil
}
