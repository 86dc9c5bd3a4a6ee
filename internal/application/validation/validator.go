// Package validation valida payloads de entrada con go-playground/validator
// y traduce los fallos a domain.ValidationError con mensajes por campo.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/categorias-api/internal/domain"
)

// Normalizer lo implementan los DTOs que limpian sus campos antes de validarse.
type Normalizer interface {
	Normalize()
}

// Validator es seguro para uso concurrente; validator.Validate cachea los structs.
type Validator struct {
	v *validator.Validate
}

// New construye un Validator que reporta los campos por su nombre JSON.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	// PostgreSQL no admite NUL en columnas de texto.
	if err := v.RegisterValidation("nonul", func(fl validator.FieldLevel) bool {
		return !strings.ContainsRune(fl.Field().String(), 0)
	}); err != nil {
		panic(err)
	}
	return &Validator{v: v}
}

// Struct normaliza (si aplica) y valida s. Devuelve *domain.ValidationError en caso de fallo.
func (val *Validator) Struct(s any) error {
	if n, ok := s.(Normalizer); ok {
		n.Normalize()
	}
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validar payload: %w", err)
	}
	out := &domain.ValidationError{Fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		if _, seen := out.Fields[fe.Field()]; seen {
			continue
		}
		out.Fields[fe.Field()] = messageFor(fe)
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es requerido", fe.Field())
	case "min":
		return fmt.Sprintf("%s debe tener al menos %s caracteres", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s debe tener como máximo %s caracteres", fe.Field(), fe.Param())
	case "number":
		return fmt.Sprintf("%s debe ser un número entero", fe.Field())
	case "nonul":
		return fmt.Sprintf("%s contiene caracteres no permitidos", fe.Field())
	}
	return fmt.Sprintf("%s no es válido", fe.Field())
}
