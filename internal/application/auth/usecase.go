package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gastrosmart/gastrosmart-api/internal/application/dto"
	"github.com/gastrosmart/gastrosmart-api/internal/domain"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/entity"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/repository"
	"github.com/gastrosmart/gastrosmart-api/pkg/jwt"
)

// Config parámetros de emisión de tokens.
type Config struct {
	JWTSecret  string
	JWTIssuer  string
	ExpMinutes int
}

// UseCase registro y login de usuarios. Los passwords se guardan con bcrypt
// y el token lleva rol y sucursal para el middleware RBAC.
type UseCase struct {
	userRepo repository.UserRepository
	cfg      Config
	now      func() time.Time
}

func NewUseCase(userRepo repository.UserRepository, cfg Config) *UseCase {
	return &UseCase{userRepo: userRepo, cfg: cfg, now: time.Now}
}

// Register crea un usuario nuevo. El email se normaliza a minúsculas.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleMesero
	}
	now := uc.now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         in.Name,
		PasswordHash: string(hash),
		Role:         role,
		LocationID:   in.LocationID,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login valida credenciales y emite el token JWT.
// Credenciales malas y usuario inexistente devuelven el mismo error.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.cfg.JWTSecret, user.ID, user.LocationID, user.Role, uc.cfg.JWTIssuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// Me devuelve el perfil del usuario autenticado.
func (uc *UseCase) Me(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role,
		LocationID: u.LocationID,
		CreatedAt:  u.CreatedAt,
	}
}
