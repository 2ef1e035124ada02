package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/storefront-client/internal/domain/entity"
)

func line(id uint, size string, qty int, price string) entity.CartLine {
	return entity.CartLine{ProductID: id, Size: size, Quantity: qty, Price: decimal.RequireFromString(price)}
}

func TestCart_AddMismaClaveSumaCantidades(t *testing.T) {
	var c entity.Cart
	c.Add(line(1, "A2", 1, "120"))
	c.Add(line(1, "A2", 2, "120"))
	c.Add(line(1, "A2", 4, "120"))

	assert.Len(t, c.Lines, 1, "misma (producto, talla) debe quedar en una sola línea")
	assert.Equal(t, 7, c.Lines[0].Quantity)
}

func TestCart_AddTallaDistintaEsOtraLinea(t *testing.T) {
	var c entity.Cart
	c.Add(line(1, "A2", 1, "120"))
	c.Add(line(1, "A3", 1, "120"))
	c.Add(line(2, "A2", 1, "45.5"))

	assert.Len(t, c.Lines, 3)
	assert.Equal(t, "A3", c.Lines[1].Size, "se conserva el orden de inserción")
}

func TestCart_AddCantidadInvalida(t *testing.T) {
	var c entity.Cart
	assert.False(t, c.Add(line(1, "A2", 0, "120")))
	assert.False(t, c.Add(line(1, "A2", -3, "120")))
	assert.Empty(t, c.Lines)
}

func TestCart_SetQuantityCeroEquivaleARemove(t *testing.T) {
	var a, b entity.Cart
	for _, c := range []*entity.Cart{&a, &b} {
		c.Add(line(1, "A2", 2, "120"))
		c.Add(line(2, "M", 1, "30"))
	}
	a.SetQuantity(1, "A2", 0)
	b.Remove(1, "A2")
	assert.Equal(t, b.Lines, a.Lines)
}

func TestCart_RemoveInexistenteNoFalla(t *testing.T) {
	var c entity.Cart
	c.Add(line(1, "A2", 2, "120"))
	assert.False(t, c.Remove(9, "A2"))
	assert.Len(t, c.Lines, 1)
}

func TestCart_Totales(t *testing.T) {
	var c entity.Cart
	c.Add(line(1, "A2", 2, "120.00"))
	c.Add(line(2, "M", 3, "19.99"))

	assert.Equal(t, 5, c.TotalItems())
	assert.True(t, decimal.RequireFromString("299.97").Equal(c.TotalPrice()), "total: %s", c.TotalPrice())
}

func TestRole_Capacidades(t *testing.T) {
	viewer := entity.RoleViewer
	assert.True(t, viewer.Can(entity.CapViewOrders))
	assert.True(t, viewer.Can(entity.CapViewProducts))
	assert.False(t, viewer.Can(entity.CapManageOrders))
	assert.False(t, viewer.Can(entity.CapManageProducts))

	for _, c := range []entity.Capability{entity.CapManageProducts, entity.CapManageOrders, entity.CapViewOrders, entity.CapViewProducts} {
		assert.True(t, entity.RoleSuperAdmin.Can(c), "super_admin debe tener %s", c)
	}

	assert.True(t, entity.RoleInventory.Can(entity.CapManageProducts))
	assert.False(t, entity.RoleInventory.Can(entity.CapViewOrders))
	assert.True(t, entity.RoleOrderManager.Can(entity.CapManageOrders))
	assert.False(t, entity.RoleOrderManager.Can(entity.CapViewProducts))
	assert.False(t, entity.Role("desconocido").Can(entity.CapViewProducts))
}

func TestOrderStatus_Valid(t *testing.T) {
	assert.True(t, entity.OrderStatusShipped.Valid())
	assert.False(t, entity.OrderStatus("lost").Valid())
}

func TestProduct_HasSize(t *testing.T) {
	p := entity.Product{SizeOptions: []string{"A1", "A2"}}
	assert.True(t, p.HasSize("A2"))
	assert.False(t, p.HasSize("A5"))
	assert.True(t, (&entity.Product{}).HasSize(""))
}
