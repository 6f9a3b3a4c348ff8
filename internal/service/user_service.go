package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/ilyahahaha/vneshtata-new/internal/cache"
	"github.com/ilyahahaha/vneshtata-new/internal/ids"
	"github.com/ilyahahaha/vneshtata-new/internal/models"
	"github.com/ilyahahaha/vneshtata-new/internal/repository"
	"github.com/ilyahahaha/vneshtata-new/internal/security"
)

type userStore interface {
	GetByID(ctx context.Context, id string) (models.User, error)
	ListIDs(ctx context.Context) ([]string, error)
	Update(ctx context.Context, id string, upd repository.UserUpdate) (models.User, error)
}

type profileStore interface {
	GetByUser(ctx context.Context, userID string) (models.Profile, error)
	Update(ctx context.Context, userID string, upd repository.ProfileUpdate) (models.Profile, error)
}

type employmentStore interface {
	Create(ctx context.Context, employment models.Employment) error
	ListByUser(ctx context.Context, userID string) ([]models.Employment, error)
	DeleteOwned(ctx context.Context, id string, ownerID string) error
}

type followStore interface {
	Create(ctx context.Context, followerID, followingID string) (bool, error)
	Delete(ctx context.Context, followerID, followingID string) (bool, error)
	Exists(ctx context.Context, followerID, followingID string) (bool, error)
	ListFollowers(ctx context.Context, userID string) ([]models.UserSummary, error)
}

type UserService struct {
	users       userStore
	profiles    profileStore
	employments employmentStore
	follows     followStore
	idsCache    *cache.BusiedIDs
	log         zerolog.Logger
}

func NewUserService(
	users userStore,
	profiles profileStore,
	employments employmentStore,
	follows followStore,
	idsCache *cache.BusiedIDs,
	log zerolog.Logger,
) *UserService {
	return &UserService{
		users:       users,
		profiles:    profiles,
		employments: employments,
		follows:     follows,
		idsCache:    idsCache,
		log:         log,
	}
}

// UserView is everything a profile page renders: the account display
// fields, the profile, the employment history (most recent first), the
// follower list and whether the viewer already follows this user.
type UserView struct {
	ID          string               `json:"id"`
	FirstName   string               `json:"firstName"`
	LastName    string               `json:"lastName"`
	Picture     *string              `json:"picture"`
	Profile     models.Profile       `json:"profile"`
	Employments []models.Employment  `json:"employments"`
	Followers   []models.UserSummary `json:"followers"`
	IsFollowed  bool                 `json:"isFollowed"`
}

func (s *UserService) GetUser(ctx context.Context, viewerID, userID string) (UserView, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserView{}, NotFound("User with this ID not found")
		}
		return UserView{}, Internal(err)
	}

	profile, err := s.profiles.GetByUser(ctx, userID)
	if err != nil {
		return UserView{}, Internal(err)
	}

	employments, err := s.employments.ListByUser(ctx, userID)
	if err != nil {
		return UserView{}, Internal(err)
	}

	followers, err := s.follows.ListFollowers(ctx, userID)
	if err != nil {
		return UserView{}, Internal(err)
	}

	isFollowed, err := s.follows.Exists(ctx, viewerID, userID)
	if err != nil {
		return UserView{}, Internal(err)
	}

	return UserView{
		ID:          user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Picture:     user.Picture,
		Profile:     profile,
		Employments: employments,
		Followers:   followers,
		IsFollowed:  isFollowed,
	}, nil
}

// GetBusiedIDs returns every taken user identifier, via the redis cache
// when warm.
func (s *UserService) GetBusiedIDs(ctx context.Context) ([]string, error) {
	cached, ok, err := s.idsCache.Get(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("busied ids cache read failed")
	}
	if ok {
		return cached, nil
	}

	listed, err := s.users.ListIDs(ctx)
	if err != nil {
		return nil, Internal(err)
	}

	if err := s.idsCache.Set(ctx, listed); err != nil {
		s.log.Warn().Err(err).Msg("busied ids cache write failed")
	}
	return listed, nil
}

// Follow creates or removes the (follower, target) edge. A duplicate
// follow reports a conflict; unfollowing a missing edge is a no-op.
func (s *UserService) Follow(ctx context.Context, followerID, targetID string, unfollow bool) error {
	if unfollow {
		if _, err := s.follows.Delete(ctx, followerID, targetID); err != nil {
			return Internal(err)
		}
		return nil
	}

	created, err := s.follows.Create(ctx, followerID, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrMissingReference) {
			return NotFound("User with this ID not found")
		}
		return Internal(err)
	}
	if !created {
		return Conflict("You are already following this user")
	}
	return nil
}

type UpdateUserInput struct {
	NewUserID string
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
}

// UpdateUser mutates only the actor's own account and returns the
// refreshed identity to reseal into the session.
func (s *UserService) UpdateUser(ctx context.Context, actorID string, input UpdateUserInput) (models.SessionUser, error) {
	upd := repository.UserUpdate{
		NewID:     input.NewUserID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
	}

	// Clients submit the password field on every account save; an empty
	// value means keep the current one, not set an empty password.
	if input.Password != nil && *input.Password != "" {
		passwordHash, err := security.HashPassword(*input.Password)
		if err != nil {
			return models.EmptySession, Internal(err)
		}
		upd.PasswordHash = passwordHash
	}

	user, err := s.users.Update(ctx, actorID, upd)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return models.EmptySession, NotFound("User not found")
		case errors.Is(err, repository.ErrDuplicate):
			return models.EmptySession, Conflict("This ID or email is already taken")
		}
		return models.EmptySession, Internal(err)
	}

	if err := s.idsCache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("invalidate busied ids cache failed")
	}

	return models.SessionFromUser(user), nil
}

type UpdateProfileInput struct {
	Status    *string
	Position  *string
	Company   *string
	Country   *string
	Education *string
	About     *string
}

func (s *UserService) UpdateProfile(ctx context.Context, actorID string, input UpdateProfileInput) (models.Profile, error) {
	profile, err := s.profiles.Update(ctx, actorID, repository.ProfileUpdate{
		Status:    input.Status,
		Position:  input.Position,
		Company:   input.Company,
		Country:   input.Country,
		Education: input.Education,
		About:     input.About,
	})
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return models.Profile{}, NotFound("User not found")
		}
		return models.Profile{}, Internal(err)
	}
	return profile, nil
}

type CreateEmploymentInput struct {
	Company    string
	Position   string
	EmployedOn string
}

// CreateEmployment re-checks the company against the closed set at the
// mutation boundary, beyond what request binding already enforced.
func (s *UserService) CreateEmployment(ctx context.Context, actorID string, input CreateEmploymentInput) (models.Employment, error) {
	company := models.Company(input.Company)
	if !company.Valid() {
		return models.Employment{}, Invalid("Invalid request parameters")
	}

	employedOn, err := parseEmploymentDate(input.EmployedOn)
	if err != nil {
		return models.Employment{}, Invalid("Invalid request parameters")
	}

	employment := models.Employment{
		ID:         ids.New(),
		UserID:     actorID,
		Company:    company,
		Position:   input.Position,
		EmployedOn: employedOn,
	}

	if err := s.employments.Create(ctx, employment); err != nil {
		if errors.Is(err, repository.ErrMissingReference) {
			return models.Employment{}, NotFound("User not found")
		}
		return models.Employment{}, Internal(err)
	}
	return employment, nil
}

// DeleteEmployment only ever deletes the actor's own rows; a foreign
// employment id reads as not found.
func (s *UserService) DeleteEmployment(ctx context.Context, actorID, employmentID string) error {
	if err := s.employments.DeleteOwned(ctx, employmentID, actorID); err != nil {
		if errors.Is(err, repository.ErrEmploymentNotFound) {
			return NotFound("Employment not found")
		}
		return Internal(err)
	}
	return nil
}

func parseEmploymentDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
