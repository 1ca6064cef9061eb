package entity

import "errors"

var (
	ErrCamposRequeridos      = errors.New("todos los campos son requeridos")
	ErrEmailYaRegistrado     = errors.New("el correo ya está registrado")
	ErrUsuarioNoEncontrado   = errors.New("usuario no encontrado")
	ErrCredencialesInvalidas = errors.New("correo o contraseña incorrectos")
)
