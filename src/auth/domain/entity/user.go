package entity

// Roles conocidos: los ids coinciden con los seeds de la tabla roles
const (
	RoleIDAdmin   int64 = 1
	RoleIDCliente int64 = 2

	RoleAdmin   = "admin"
	RoleCliente = "cliente"
)

// User representa un usuario (administrador o cliente)
type User struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"-"` // hash bcrypt, nunca se serializa
	RoleID   int64  `json:"role_id"`
}

// RoleName retorna el nombre del rol a partir del id
func (u *User) RoleName() string {
	if u.RoleID == RoleIDAdmin {
		return RoleAdmin
	}
	return RoleCliente
}
