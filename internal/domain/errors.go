package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrValidation        = errors.New("validación fallida")
	ErrTransport         = errors.New("fallo de comunicación con el backend")
	ErrSystemOwned       = errors.New("la categoría es del sistema y no se puede eliminar")
	ErrDanglingReference = errors.New("la asociación referencia una categoría inexistente")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
)

// TransportError fallo de red o respuesta no exitosa del backend REST.
// Payload conserva el cuerpo de error devuelto por el backend, si lo hubo.
type TransportError struct {
	Op         string
	StatusCode int
	Payload    string
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Payload != "":
		return fmt.Sprintf("%s: HTTP %d: %s", e.Op, e.StatusCode, e.Payload)
	default:
		return fmt.Sprintf("%s: HTTP %d", e.Op, e.StatusCode)
	}
}

// Is permite errors.Is(err, ErrTransport).
func (e *TransportError) Is(target error) bool { return target == ErrTransport }

func (e *TransportError) Unwrap() error { return e.Err }

// Validationf construye un error que cumple errors.Is(err, ErrValidation).
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
