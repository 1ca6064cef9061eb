package usecase

import (
	"context"
	"errors"
	"fmt"

	"almacen/src/auth/application/response"
	"almacen/src/auth/domain/entity"
	"almacen/src/auth/domain/port"

	"golang.org/x/crypto/bcrypt"
)

// RegistrarUsuarioUseCase caso de uso para registrar un usuario
type RegistrarUsuarioUseCase struct {
	userRepo port.UserRepository
}

// NewRegistrarUsuarioUseCase crea una nueva instancia del caso de uso
func NewRegistrarUsuarioUseCase(userRepo port.UserRepository) *RegistrarUsuarioUseCase {
	return &RegistrarUsuarioUseCase{
		userRepo: userRepo,
	}
}

// Execute registra un usuario nuevo:
// 1. Verificar que el email no esté registrado
// 2. Hashear la contraseña con bcrypt (costo por defecto)
// 3. Persistir con el rol pedido (cliente si no se indica)
func (uc *RegistrarUsuarioUseCase) Execute(ctx context.Context, nombre, email, password, role string) (*response.UserResponse, error) {
	if nombre == "" || email == "" || password == "" {
		return nil, entity.ErrCamposRequeridos
	}

	existing, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, entity.ErrUsuarioNoEncontrado) {
		return nil, err
	}
	if existing != nil {
		return nil, entity.ErrEmailYaRegistrado
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	roleID := entity.RoleIDCliente
	if role == entity.RoleAdmin {
		roleID = entity.RoleIDAdmin
	}

	user := &entity.User{
		Nombre:   nombre,
		Email:    email,
		Password: string(hashed),
		RoleID:   roleID,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return &response.UserResponse{
		ID:     user.ID,
		Nombre: user.Nombre,
		Email:  user.Email,
		Role:   user.RoleName(),
	}, nil
}
