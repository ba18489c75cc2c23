// Package authz holds the role capability table. Every permission check in
// the API goes through Can; no handler hard-codes role comparisons.
package authz

import "github.com/infocravorasolutions-code/devang-lights-admin/internal/models"

type Action string

const (
	// Pages, used by the frontend to build its menu.
	PageDashboard      Action = "page.dashboard"
	PageProducts       Action = "page.products"
	PageInventory      Action = "page.inventory"
	PagePurchaseOrders Action = "page.purchase-orders"
	PageMedia          Action = "page.media"
	PageReports        Action = "page.reports"
	PageUsers          Action = "page.users"
	PageActivityLog    Action = "page.activity-log"

	// Write actions.
	ProductEdit         Action = "product.edit"
	ProductDelete       Action = "product.delete"
	ProductImportExport Action = "product.import-export"
	StockManage         Action = "stock.manage"
	StockTransfer       Action = "stock.transfer"
	POCreate            Action = "po.create"
	POReceive           Action = "po.receive"
	// POCancel has no backing store operation; the permission exists
	// because the frontend shows a cancel button to admins.
	POCancel    Action = "po.cancel"
	UsersManage Action = "users.manage"
)

// pages in menu order.
var pages = []Action{
	PageDashboard,
	PageProducts,
	PageInventory,
	PagePurchaseOrders,
	PageMedia,
	PageReports,
	PageUsers,
	PageActivityLog,
}

var permissions = map[models.Role]map[Action]bool{
	models.RoleAdmin: {
		PageDashboard: true, PageProducts: true, PageInventory: true,
		PagePurchaseOrders: true, PageMedia: true, PageReports: true,
		PageUsers: true, PageActivityLog: true,
		ProductEdit: true, ProductDelete: true, ProductImportExport: true,
		StockManage: true, StockTransfer: true,
		POCreate: true, POReceive: true, POCancel: true,
		UsersManage: true,
	},
	models.RoleManager: {
		PageDashboard: true, PageProducts: true, PageInventory: true,
		PagePurchaseOrders: true, PageMedia: true, PageReports: true,
		PageActivityLog: true,
		ProductEdit:     true,
		StockManage:     true,
		POCreate:        true, POReceive: true,
	},
	models.RoleStaff: {
		PageDashboard: true, PageProducts: true, PageInventory: true,
		PagePurchaseOrders: true, PageReports: true,
		POReceive: true,
	},
}

// Can reports whether the role is allowed to perform the action. Unknown
// roles can do nothing.
func Can(role models.Role, action Action) bool {
	return permissions[role][action]
}

// PagesFor returns the pages visible to the role, in menu order.
func PagesFor(role models.Role) []Action {
	var allowed []Action
	for _, p := range pages {
		if Can(role, p) {
			allowed = append(allowed, p)
		}
	}
	return allowed
}
