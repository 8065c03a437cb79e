package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los textos van en portugués
// porque se exponen tal cual en el payload {"error": ...} del front-end.
var (
	ErrNotFound          = errors.New("recurso não encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflito com o estado atual")
	ErrInsufficientStock = errors.New("quantidade insuficiente em estoque")
)
