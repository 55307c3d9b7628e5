package repository

import (
	"context"
	"strings"
	"time"

	"github.com/shenikar/emergency_management_system/internal/models"
	"github.com/shenikar/emergency_management_system/internal/service"
	"github.com/shenikar/emergency_management_system/pkg/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository struct {
	users collection[models.User]
	now   func() time.Time
}

func NewUserRepository(db *mongo.Database) service.UserRepository {
	return &UserRepository{
		users: newCollection[models.User](db, mongodb.CollectionUsers),
		now:   time.Now,
	}
}

// Create stores the user. A taken email surfaces as models.ErrConflict via the unique index.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	now := r.now().UTC()
	user.ID = primitive.NewObjectID()
	user.Email = strings.ToLower(user.Email)
	user.CreatedAt, user.UpdatedAt = now, now
	return r.users.insert(ctx, user)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.users.findOne(ctx, bson.M{"email": strings.ToLower(email)})
}

func (r *UserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return r.users.findByID(ctx, id)
}
