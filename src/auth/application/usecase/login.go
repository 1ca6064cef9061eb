package usecase

import (
	"context"
	"errors"

	"almacen/src/auth/application/response"
	"almacen/src/auth/domain/entity"
	"almacen/src/auth/domain/port"
	"almacen/src/auth/infrastructure/token"

	"golang.org/x/crypto/bcrypt"
)

// LoginUseCase caso de uso para inicio de sesión con email y contraseña
type LoginUseCase struct {
	userRepo   port.UserRepository
	jwtService *token.JWTService
}

// NewLoginUseCase crea una nueva instancia del caso de uso
func NewLoginUseCase(userRepo port.UserRepository, jwtService *token.JWTService) *LoginUseCase {
	return &LoginUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Execute valida credenciales y emite un token.
// El mismo error cubre email inexistente y contraseña incorrecta
// para no revelar cuál de los dos falló.
func (uc *LoginUseCase) Execute(ctx context.Context, email, password string) (*response.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrUsuarioNoEncontrado) {
			return nil, entity.ErrCredencialesInvalidas
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, entity.ErrCredencialesInvalidas
	}

	tokenString, err := uc.jwtService.Generar(user.ID, user.Email, user.RoleName())
	if err != nil {
		return nil, err
	}

	return &response.LoginResponse{
		Message: "Inicio de sesión exitoso",
		Token:   tokenString,
		User: response.UserResponse{
			ID:     user.ID,
			Nombre: user.Nombre,
			Email:  user.Email,
			Role:   user.RoleName(),
		},
	}, nil
}
