package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pezeshkyar/checkup_backend/internal/repo"
	entuser "github.com/pezeshkyar/checkup_backend/internal/repo/user"
)

var ErrUserNotFound = errors.New("user not found")

type UpdateMeRequest struct {
	FirstName *string
	LastName  *string
	Email     *string
}

// Me is the account view returned to the owner. The national code never
// leaves the service, only the approval flag does.
type Me struct {
	ID               uuid.UUID `json:"id"`
	Phone            string    `json:"phone"`
	FirstName        *string   `json:"first_name"`
	LastName         *string   `json:"last_name"`
	Email            *string   `json:"email"`
	IdentityApproved bool      `json:"identity_approved"`
	PhoneVerified    bool      `json:"phone_verified"`
	Status           string    `json:"status"`
}

type Service interface {
	GetMe(ctx context.Context, userID uuid.UUID) (*Me, error)
	UpdateMe(ctx context.Context, userID uuid.UUID, req UpdateMeRequest) (*Me, error)
}

type userService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &userService{db: db}
}

func (s *userService) GetMe(ctx context.Context, userID uuid.UUID) (*Me, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(userID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return toMe(u), nil
}

func (s *userService) UpdateMe(ctx context.Context, userID uuid.UUID, req UpdateMeRequest) (*Me, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(userID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	upd := s.db.User.UpdateOne(u)
	if req.FirstName != nil {
		upd = upd.SetNillableFirstName(req.FirstName)
	}
	if req.LastName != nil {
		upd = upd.SetNillableLastName(req.LastName)
	}
	if req.Email != nil {
		upd = upd.SetNillableEmail(req.Email)
	}

	u, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return toMe(u), nil
}

func toMe(u *repo.User) *Me {
	return &Me{
		ID:               u.ID,
		Phone:            u.Phone,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Email:            u.Email,
		IdentityApproved: u.IdentityApproved,
		PhoneVerified:    u.PhoneVerified,
		Status:           string(u.Status),
	}
}
