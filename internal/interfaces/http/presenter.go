package http

import (
	"github.com/jhoicas/storefront-client/internal/application/dto"
	"github.com/jhoicas/storefront-client/internal/domain/entity"
)

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		SizeOptions: dto.SizeList(p.SizeOptions),
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductList(list []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out
}

func toAdminUserDTO(u *entity.AdminUser) dto.AdminUserDTO {
	if u == nil {
		return dto.AdminUserDTO{}
	}
	return dto.AdminUserDTO{ID: u.ID, Email: u.Email, Role: string(u.Role), IsActive: u.IsActive, LastLogin: u.LastLogin}
}

func toOrderDTO(o *entity.Order) dto.OrderDTO {
	a := o.ShippingAddress
	out := dto.OrderDTO{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		GuestEmail:  o.GuestEmail,
		ShippingAddress: dto.AddressDTO{
			FirstName: a.FirstName,
			LastName:  a.LastName,
			Address1:  a.Address1,
			Address2:  a.Address2,
			City:      a.City,
			State:     a.State,
			ZipCode:   a.ZipCode,
			Country:   a.Country,
		},
		Items:           make([]dto.OrderItemDTO, 0, len(o.Items)),
		TotalAmount:     o.TotalAmount,
		Status:          string(o.Status),
		StripePaymentID: o.StripePaymentID,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
	for _, it := range o.Items {
		out.Items = append(out.Items, dto.OrderItemDTO{
			ID:        it.ID,
			OrderID:   it.OrderID,
			ProductID: it.ProductID,
			Product:   toProductResponse(it.Product),
			Quantity:  it.Quantity,
			Price:     it.Price,
			Size:      it.Size,
		})
	}
	return out
}

func toOrderList(list []*entity.Order) []dto.OrderDTO {
	out := make([]dto.OrderDTO, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderDTO(o))
	}
	return out
}

// cartView arma la vista del carrito a partir de una copia de sus líneas.
func cartView(lines []entity.CartLine) dto.CartView {
	c := entity.Cart{Lines: lines}
	view := dto.CartView{
		Items:      make([]dto.CartLineView, 0, len(lines)),
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
	}
	for _, l := range lines {
		if l.Product != nil {
			view.Hydrated++
		}
		view.Items = append(view.Items, dto.CartLineView{
			ProductID: l.ProductID,
			Size:      l.Size,
			Quantity:  l.Quantity,
			Price:     l.Price,
			Subtotal:  l.Subtotal(),
			Product:   toProductResponse(l.Product),
		})
	}
	return view
}

func capabilities(can func(entity.Capability) bool) map[string]bool {
	caps := []entity.Capability{entity.CapManageProducts, entity.CapManageOrders, entity.CapViewOrders, entity.CapViewProducts}
	out := make(map[string]bool, len(caps))
	for _, c := range caps {
		out[string(c)] = can(c)
	}
	return out
}
