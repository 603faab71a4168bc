package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/inventory_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/SscSPs/inventory_ledger_app/internal/utils"
)

// Default administrator created on first start.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminFullName = "System Administrator"
	DefaultAdminEmail    = "admin@company.com"
)

type userService struct {
	BaseService
	store *StateContainer
}

// NewUserService creates the user service.
func NewUserService(store *StateContainer) portssvc.UserSvcFacade {
	return &userService{store: store}
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	var found domain.User
	err := s.store.View(func(st *domain.State) error {
		i := st.UserIndex(userID)
		if i < 0 {
			return notFound("user", userID)
		}
		found = copyUser(st.Users[i])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var found domain.User
	err := s.store.View(func(st *domain.State) error {
		i := st.UserIndexByUsername(username)
		if i < 0 {
			return notFound("user", username)
		}
		found = copyUser(st.Users[i])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	s.store.Read(func(st *domain.State) {
		users = make([]domain.User, len(st.Users))
		for i, u := range st.Users {
			users[i] = copyUser(u)
		}
	})
	return users, nil
}

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		ID:           s.store.NewID(),
		Username:     req.Username,
		PasswordHash: hash,
		Role:         domain.UserRole(req.Role),
		FullName:     req.FullName,
		Email:        req.Email,
		IsActive:     true,
		CreatedAt:    s.store.Now(),
	}

	err = s.store.Mutate(ctx, func(st *domain.State) error {
		if st.UserIndexByUsername(user.Username) >= 0 {
			return fmt.Errorf("username %q: %w", user.Username, apperrors.ErrDuplicate)
		}
		st.Users = append(st.Users, user)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "User created",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
		slog.String("role", string(user.Role)))
	return &user, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var updated domain.User
	err := s.store.Mutate(ctx, func(st *domain.State) error {
		i := st.UserIndex(userID)
		if i < 0 {
			return notFound("user", userID)
		}
		u := &st.Users[i]
		if req.FullName != nil {
			u.FullName = *req.FullName
		}
		if req.Email != nil {
			u.Email = *req.Email
		}
		if req.Role != nil {
			u.Role = domain.UserRole(*req.Role)
		}
		if req.IsActive != nil {
			u.IsActive = *req.IsActive
		}
		updated = copyUser(*u)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	return s.store.Mutate(ctx, func(st *domain.State) error {
		i := st.UserIndex(userID)
		if i < 0 {
			return notFound("user", userID)
		}
		expiry := refreshTokenExpiryTime.UTC()
		st.Users[i].RefreshTokenHash = refreshTokenHash
		st.Users[i].RefreshTokenExpiryTime = &expiry
		return nil
	})
}

func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	return s.store.Mutate(ctx, func(st *domain.State) error {
		i := st.UserIndex(userID)
		if i < 0 {
			return notFound("user", userID)
		}
		st.Users[i].RefreshTokenHash = ""
		st.Users[i].RefreshTokenExpiryTime = nil
		return nil
	})
}

func (s *userService) DeleteUser(ctx context.Context, userID string, requestingUserID string) error {
	if userID == requestingUserID {
		return fmt.Errorf("users cannot delete themselves: %w", apperrors.ErrForbidden)
	}
	err := s.store.Mutate(ctx, func(st *domain.State) error {
		i := st.UserIndex(userID)
		if i < 0 {
			return notFound("user", userID)
		}
		st.Users = slices.Delete(st.Users, i, i+1)
		return nil
	})
	if err != nil {
		return err
	}
	s.LogInfo(ctx, "User deleted", slog.String("user_id", userID))
	return nil
}

func (s *userService) EnsureDefaultAdmin(ctx context.Context, password string) (bool, error) {
	var hasUsers bool
	s.store.Read(func(st *domain.State) {
		hasUsers = len(st.Users) > 0
	})
	if hasUsers {
		return false, nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("failed to hash default admin password: %w", err)
	}
	admin := domain.User{
		ID:           s.store.NewID(),
		Username:     DefaultAdminUsername,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		FullName:     DefaultAdminFullName,
		Email:        DefaultAdminEmail,
		IsActive:     true,
		CreatedAt:    s.store.Now(),
	}

	created := false
	err = s.store.Mutate(ctx, func(st *domain.State) error {
		if len(st.Users) > 0 {
			return nil
		}
		st.Users = append(st.Users, admin)
		created = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if created {
		s.LogInfo(ctx, "Default administrator created", slog.String("username", admin.Username))
	}
	return created, nil
}

func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive || !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogDebug(ctx, "Login rejected", slog.String("username", username))
		return nil, apperrors.ErrInvalidCredentials
	}

	loginAt := s.store.Now()
	var updated domain.User
	err = s.store.Mutate(ctx, func(st *domain.State) error {
		i := st.UserIndex(user.ID)
		if i < 0 {
			return apperrors.ErrInvalidCredentials
		}
		st.Users[i].LastLogin = &loginAt
		updated = copyUser(st.Users[i])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error {
	if err := validateRequest(req); err != nil {
		return err
	}
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}
	return s.setPassword(ctx, userID, req.NewPassword)
}

func (s *userService) ResetUserPassword(ctx context.Context, userID string, newPassword string) error {
	if err := validateRequest(dto.ResetPasswordRequest{NewPassword: newPassword}); err != nil {
		return err
	}
	return s.setPassword(ctx, userID, newPassword)
}

// setPassword replaces the hash and revokes any refresh token.
func (s *userService) setPassword(ctx context.Context, userID, password string) error {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	err = s.store.Mutate(ctx, func(st *domain.State) error {
		i := st.UserIndex(userID)
		if i < 0 {
			return notFound("user", userID)
		}
		st.Users[i].PasswordHash = hash
		st.Users[i].RefreshTokenHash = ""
		st.Users[i].RefreshTokenExpiryTime = nil
		return nil
	})
	if err != nil {
		return err
	}
	s.LogInfo(ctx, "Password changed", slog.String("user_id", userID))
	return nil
}

func copyUser(u domain.User) domain.User {
	if u.LastLogin != nil {
		t := *u.LastLogin
		u.LastLogin = &t
	}
	if u.RefreshTokenExpiryTime != nil {
		t := *u.RefreshTokenExpiryTime
		u.RefreshTokenExpiryTime = &t
	}
	return u
}
