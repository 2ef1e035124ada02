package checkout

import "github.com/jhoicas/storefront-client/internal/application/dto"

// Tarjetas de prueba que acepta la pasarela simulada.
const (
	TestCardSuccess  = "4242424242424242"
	TestCardDeclined = "4000000000000002"
	TestCardError    = "4000000000000119"
	TestCardAmex     = "378282246310005"
)

// TestCard tarjeta de prueba con el resultado esperado.
type TestCard struct {
	Number      string `json:"number"`
	Description string `json:"description"`
}

// TestCards listado que muestra la vista de pago.
func TestCards() []TestCard {
	return []TestCard{
		{TestCardSuccess, "Pago exitoso"},
		{TestCardDeclined, "Tarjeta rechazada"},
		{TestCardError, "Error de procesamiento"},
		{TestCardAmex, "American Express exitosa"},
	}
}

// ValidateCard verificación local de formato: visa 16 dígitos con 4, mastercard 16 con 5,
// amex 15 con 3. Espacios y guiones se ignoran.
func ValidateCard(number string) dto.CardCheck {
	digits := make([]byte, 0, len(number))
	for i := 0; i < len(number); i++ {
		ch := number[i]
		switch {
		case ch == ' ' || ch == '-':
			continue
		case ch < '0' || ch > '9':
			return dto.CardCheck{Type: "unknown"}
		}
		digits = append(digits, ch)
	}
	if len(digits) == 0 {
		return dto.CardCheck{Type: "unknown"}
	}
	switch {
	case digits[0] == '4' && len(digits) == 16:
		return dto.CardCheck{Valid: true, Type: "visa"}
	case digits[0] == '5' && len(digits) == 16:
		return dto.CardCheck{Valid: true, Type: "mastercard"}
	case digits[0] == '3' && len(digits) == 15:
		return dto.CardCheck{Valid: true, Type: "amex"}
	}
	return dto.CardCheck{Type: "unknown"}
}

func normalizeCard(number string) string {
	out := make([]byte, 0, len(number))
	for i := 0; i < len(number); i++ {
		if number[i] >= '0' && number[i] <= '9' {
			out = append(out, number[i])
		}
	}
	return string(out)
}
