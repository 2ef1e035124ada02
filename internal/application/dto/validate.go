package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/storefront-client/internal/domain"
)

var validate = validator.New()

// Validate aplica las etiquetas `validate` de los DTO. El error resultante envuelve
// domain.ErrInvalidInput y lista los campos inválidos.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(fields, ", "))
}
