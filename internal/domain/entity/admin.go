package entity

import "time"

// Role rol de un administrador del back office.
type Role string

// Roles válidos para AdminUser.
const (
	RoleSuperAdmin   Role = "super_admin"
	RoleInventory    Role = "inventory"
	RoleOrderManager Role = "order_manager"
	RoleViewer       Role = "viewer"
)

// Capability permiso derivado del rol.
type Capability string

// Capacidades que consulta la UI de administración.
const (
	CapManageProducts Capability = "manage_products"
	CapManageOrders   Capability = "manage_orders"
	CapViewOrders     Capability = "view_orders"
	CapViewProducts   Capability = "view_products"
)

// capabilityRoles tablas fijas de pertenencia: qué roles tienen cada capacidad.
var capabilityRoles = map[Capability][]Role{
	CapManageProducts: {RoleSuperAdmin, RoleInventory},
	CapManageOrders:   {RoleSuperAdmin, RoleOrderManager},
	CapViewOrders:     {RoleSuperAdmin, RoleOrderManager, RoleViewer},
	CapViewProducts:   {RoleSuperAdmin, RoleInventory, RoleViewer},
}

// Can indica si role tiene la capacidad c.
func (r Role) Can(c Capability) bool {
	for _, allowed := range capabilityRoles[c] {
		if allowed == r {
			return true
		}
	}
	return false
}

// AdminUser identidad autenticada del back office.
type AdminUser struct {
	ID        uint
	Email     string
	Role      Role
	IsActive  bool
	LastLogin *time.Time
}
