package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrNotFound        = errors.New("enregistrement non trouvé")
	ErrForbidden       = errors.New("ce rôle ne peut pas gérer cette entité")
	ErrUnknownEntity   = errors.New("entité inconnue")
	ErrInvalidFields   = errors.New("champs invalides")
	ErrAlreadyArchived = errors.New("le projet est déjà archivé")
	ErrNotArchived     = errors.New("le projet n'est pas archivé")
)

// FieldError reports one rejected field. It matches ErrInvalidFields.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrInvalidFields, e.Field, e.Err)
}

func (e *FieldError) Unwrap() []error { return []error{ErrInvalidFields, e.Err} }
