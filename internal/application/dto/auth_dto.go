package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoginRequest entrada para login del back office.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminUserDTO identidad del administrador (sin password).
type AdminUserDTO struct {
	ID        uint       `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// LoginResponse salida de POST /api/admin/auth/login.
type LoginResponse struct {
	Success bool          `json:"success"`
	Token   string        `json:"token"`
	Admin   *AdminUserDTO `json:"admin"`
	Message string        `json:"message"`
}

// ProfileResponse salida de GET /api/admin/profile.
type ProfileResponse struct {
	Success bool          `json:"success"`
	Admin   *AdminUserDTO `json:"admin"`
}

// StatsDTO métricas del dashboard de administración.
type StatsDTO struct {
	TotalProducts int64           `json:"total_products"`
	TotalOrders   int64           `json:"total_orders"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	PendingOrders int64           `json:"pending_orders"`
	RecentOrders  []OrderDTO      `json:"recent_orders"`
}

// StatsResponse salida de GET /api/admin/stats.
type StatsResponse struct {
	Success bool     `json:"success"`
	Stats   StatsDTO `json:"stats"`
}
