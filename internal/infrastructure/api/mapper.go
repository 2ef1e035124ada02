package api

import (
	"github.com/jhoicas/storefront-client/internal/application/dto"
	"github.com/jhoicas/storefront-client/internal/domain/entity"
)

func toProduct(p *dto.ProductResponse) *entity.Product {
	if p == nil {
		return nil
	}
	return &entity.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		SizeOptions: []string(p.SizeOptions),
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// toAdminUser devuelve nil si la respuesta no trae identidad.
func toAdminUser(a *dto.AdminUserDTO) *entity.AdminUser {
	if a == nil {
		return nil
	}
	return &entity.AdminUser{
		ID:        a.ID,
		Email:     a.Email,
		Role:      entity.Role(a.Role),
		IsActive:  a.IsActive,
		LastLogin: a.LastLogin,
	}
}

func toAddress(a dto.AddressDTO) entity.Address {
	return entity.Address{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Address1:  a.Address1,
		Address2:  a.Address2,
		City:      a.City,
		State:     a.State,
		ZipCode:   a.ZipCode,
		Country:   a.Country,
	}
}

// toOrder convierte la orden del backend al modelo de dominio.
func toOrder(o *dto.OrderDTO) *entity.Order {
	if o == nil {
		return nil
	}
	items := make([]entity.OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, entity.OrderItem{
			ID:        it.ID,
			OrderID:   it.OrderID,
			ProductID: it.ProductID,
			Product:   toProduct(it.Product),
			Quantity:  it.Quantity,
			Price:     it.Price,
			Size:      it.Size,
		})
	}
	return &entity.Order{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		GuestEmail:      o.GuestEmail,
		ShippingAddress: toAddress(o.ShippingAddress),
		Items:           items,
		TotalAmount:     o.TotalAmount,
		Status:          entity.OrderStatus(o.Status),
		StripePaymentID: o.StripePaymentID,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func toOrders(list []dto.OrderDTO) []*entity.Order {
	out := make([]*entity.Order, 0, len(list))
	for i := range list {
		out = append(out, toOrder(&list[i]))
	}
	return out
}
