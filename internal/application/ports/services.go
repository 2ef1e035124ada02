package ports

import (
	"context"
	"io"

	"github.com/jhoicas/storefront-client/internal/application/dto"
	"github.com/jhoicas/storefront-client/internal/domain/entity"
)

// Puertos de salida hacia el backend REST. Los contenedores de estado solo conocen
// estos contratos; la implementación HTTP vive en infrastructure/api y en pruebas se inyectan fakes.

// ProductService endpoints de catálogo (públicos) y de administración de productos.
type ProductService interface {
	List(ctx context.Context, category, search string) ([]*entity.Product, error)
	Get(ctx context.Context, id uint) (*entity.Product, error)
	Create(ctx context.Context, in dto.ProductRequest) (*entity.Product, error)
	Update(ctx context.Context, id uint, in dto.UpdateProductRequest) (*entity.Product, error)
	Delete(ctx context.Context, id uint) error
}

// LoginResult resultado de un login exitoso.
type LoginResult struct {
	Token   string
	Admin   *entity.AdminUser
	Message string
}

// AuthService endpoints de sesión del back office.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*entity.AdminUser, error)
	Stats(ctx context.Context) (*dto.StatsDTO, error)
}

// OrderService endpoints de órdenes: creación y consulta de invitados, gestión de administración.
type OrderService interface {
	Create(ctx context.Context, in dto.CreateOrderRequest) (*entity.Order, error)
	Track(ctx context.Context, orderNumber string) (*entity.Order, error)
	ByEmail(ctx context.Context, email string) ([]*entity.Order, error)
	List(ctx context.Context, page dto.PageRequest) ([]*entity.Order, *dto.Pagination, error)
	UpdateStatus(ctx context.Context, id uint, status entity.OrderStatus) (*entity.Order, error)
}

// PaymentService pasarela simulada.
type PaymentService interface {
	Process(ctx context.Context, in dto.PaymentRequest) (*dto.PaymentResponse, error)
}

// UploadService subida y borrado de imágenes de producto.
type UploadService interface {
	UploadImage(ctx context.Context, filename string, content io.Reader) (string, error)
	DeleteImage(ctx context.Context, imageURL string) error
}

// ReceiptRenderer genera el comprobante PDF de una orden.
type ReceiptRenderer interface {
	RenderReceipt(ctx context.Context, order *entity.Order) ([]byte, error)
}
