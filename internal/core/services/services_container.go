package services

import (
	portssvc "github.com/SscSPs/inventory_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_ledger_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, store *StateContainer) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	catalog := NewCatalogService(store)
	container.Category = catalog
	container.Brand = catalog
	container.Attribute = catalog

	container.Product = NewProductService(store)
	container.Customer = NewCustomerService(store)
	container.Supplier = NewSupplierService(store)
	container.Sale = NewSaleService(store)
	container.CreditDebit = NewCreditDebitService(store)
	container.User = NewUserService(store)
	container.Company = NewCompanyService(store)
	container.Reporting = NewReportingService(store)

	// Token service reads users for refresh token validation
	container.TokenService = NewTokenService(cfg, container.User)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ProductSvcFacade     = (*productService)(nil)
	_ portssvc.CustomerSvcFacade    = (*customerService)(nil)
	_ portssvc.SupplierSvcFacade    = (*supplierService)(nil)
	_ portssvc.SaleSvcFacade        = (*saleService)(nil)
	_ portssvc.CreditDebitSvcFacade = (*creditDebitService)(nil)
	_ portssvc.UserSvcFacade        = (*userService)(nil)
	_ portssvc.CompanySvcFacade     = (*companyService)(nil)
	_ portssvc.TokenSvcFacade       = (*tokenService)(nil)
)
