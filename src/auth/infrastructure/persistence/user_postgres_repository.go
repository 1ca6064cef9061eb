package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"almacen/src/auth/domain/entity"
	"almacen/src/auth/domain/port"
)

// UserPostgresRepository implementa UserRepository usando PostgreSQL
type UserPostgresRepository struct {
	db *sql.DB
}

// NewUserPostgresRepository crea una nueva instancia del repositorio
func NewUserPostgresRepository(db *sql.DB) port.UserRepository {
	return &UserPostgresRepository{
		db: db,
	}
}

// Create persiste un usuario nuevo y asigna su id
func (r *UserPostgresRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (nombre, email, password, role_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		user.Nombre,
		user.Email,
		user.Password,
		user.RoleID,
	).Scan(&user.ID)

	if err != nil {
		return fmt.Errorf("error saving user: %w", err)
	}

	return nil
}

// FindByEmail busca un usuario por email
func (r *UserPostgresRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, nombre, email, password, role_id
		FROM users
		WHERE email = $1
	`

	user := &entity.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Nombre,
		&user.Email,
		&user.Password,
		&user.RoleID,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrUsuarioNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("error finding user: %w", err)
	}

	return user, nil
}

// FindByID busca un usuario por id
func (r *UserPostgresRepository) FindByID(ctx context.Context, userID int64) (*entity.User, error) {
	query := `
		SELECT id, nombre, email, password, role_id
		FROM users
		WHERE id = $1
	`

	user := &entity.User{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&user.ID,
		&user.Nombre,
		&user.Email,
		&user.Password,
		&user.RoleID,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrUsuarioNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("error finding user: %w", err)
	}

	return user, nil
}
