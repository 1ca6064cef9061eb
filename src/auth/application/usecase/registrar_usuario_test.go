package usecase

import (
	"context"
	"errors"
	"testing"

	"almacen/src/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepo es un repositorio en memoria indexado por email
type fakeUserRepo struct {
	users  map[string]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User), nextID: 1}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, entity.ErrUsuarioNoEncontrado
	}
	return u, nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, entity.ErrUsuarioNoEncontrado
}

func TestRegistrarUsuario_Exitoso(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewRegistrarUsuarioUseCase(repo)

	resp, err := uc.Execute(context.Background(), "Ana", "ana@example.com", "secreta123", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Role != entity.RoleCliente {
		t.Errorf("expected rol cliente por defecto, got %s", resp.Role)
	}

	stored := repo.users["ana@example.com"]
	if stored == nil {
		t.Fatal("user was not persisted")
	}
	if stored.Password == "secreta123" {
		t.Error("password must be stored hashed, not in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secreta123")); err != nil {
		t.Errorf("stored hash does not match original password: %v", err)
	}
}

func TestRegistrarUsuario_RolAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewRegistrarUsuarioUseCase(repo)

	resp, err := uc.Execute(context.Background(), "Root", "root@example.com", "secreta123", entity.RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Role != entity.RoleAdmin {
		t.Errorf("expected rol admin, got %s", resp.Role)
	}
}

func TestRegistrarUsuario_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewRegistrarUsuarioUseCase(repo)

	if _, err := uc.Execute(context.Background(), "Ana", "ana@example.com", "secreta123", ""); err != nil {
		t.Fatalf("setup: %v", err)
	}

	_, err := uc.Execute(context.Background(), "Otra Ana", "ana@example.com", "otraclave", "")
	if !errors.Is(err, entity.ErrEmailYaRegistrado) {
		t.Fatalf("expected ErrEmailYaRegistrado, got %v", err)
	}
}

func TestRegistrarUsuario_CamposRequeridos(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewRegistrarUsuarioUseCase(repo)

	cases := []struct{ nombre, email, password string }{
		{"", "a@example.com", "clave"},
		{"Ana", "", "clave"},
		{"Ana", "a@example.com", ""},
	}
	for _, tc := range cases {
		if _, err := uc.Execute(context.Background(), tc.nombre, tc.email, tc.password, ""); !errors.Is(err, entity.ErrCamposRequeridos) {
			t.Errorf("expected ErrCamposRequeridos for %+v, got %v", tc, err)
		}
	}
}
