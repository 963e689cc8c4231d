package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/BLVNQ/buildconnect-server/internal/domain"
)

const usersCollection = "users"

type UserRepo struct{ db *mongo.Database }

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Insert(ctx context.Context, u *domain.User) error {
	_, err := r.db.Collection(usersCollection).InsertOne(ctx, u)
	return err
}
