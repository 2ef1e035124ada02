package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-client/internal/application/dto"
	"github.com/jhoicas/storefront-client/internal/domain"
)

func TestSizeList_AceptaStringYArreglo(t *testing.T) {
	var p dto.ProductResponse
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"size_options":"A1, A2,A3"}`), &p))
	assert.Equal(t, dto.SizeList{"A1", "A2", "A3"}, p.SizeOptions)

	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"size_options":["S","M"]}`), &p))
	assert.Equal(t, dto.SizeList{"S", "M"}, p.SizeOptions)

	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"size_options":""}`), &p))
	assert.Empty(t, p.SizeOptions)
}

func TestCartItem_PrecioComoNumero(t *testing.T) {
	raw, err := json.Marshal(dto.CartItem{ProductID: 1, Quantity: 2, Size: "A2", Price: decimal.RequireFromString("120.5")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"product_id":1,"quantity":2,"size":"A2","price":120.5}`, string(raw))
}

func TestValidate_CreateOrderRequest(t *testing.T) {
	in := dto.CreateOrderRequest{
		GuestEmail: "no-es-email",
		Items:      []dto.CartItem{{ProductID: 1, Quantity: 1}},
	}
	err := dto.Validate(in)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "GuestEmail")
	assert.Contains(t, err.Error(), "FirstName")

	in.GuestEmail = "cliente@example.com"
	in.ShippingAddress = dto.AddressDTO{FirstName: "John", LastName: "Doe", Address1: "123 Main St", City: "HCMC", ZipCode: "70000"}
	assert.NoError(t, dto.Validate(in))
}

func TestPageRequest_DefaultPage(t *testing.T) {
	p := dto.PageRequest{Limit: 500}
	p.DefaultPage()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.Limit)
}
