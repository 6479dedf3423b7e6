package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrProductNotFound    = errors.New("producto no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidQuantity    = errors.New("la cantidad debe ser un entero mayor o igual a 1")
	ErrOutOfStock         = errors.New("stock insuficiente para la cantidad solicitada")
	ErrInvalidTransition  = errors.New("transición de estado no permitida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)
