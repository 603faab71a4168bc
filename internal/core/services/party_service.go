package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/inventory_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

type customerService struct {
	BaseService
	store *StateContainer
}

// NewCustomerService creates the customer service.
func NewCustomerService(store *StateContainer) portssvc.CustomerSvcFacade {
	return &customerService{store: store}
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	var found domain.Customer
	err := s.store.View(func(st *domain.State) error {
		i := st.CustomerIndex(customerID)
		if i < 0 {
			return notFound("customer", customerID)
		}
		found = st.Customers[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	var customers []domain.Customer
	s.store.Read(func(st *domain.State) {
		customers = slices.Clone(st.Customers)
	})
	return customers, nil
}

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	customer := domain.Customer{
		ID:            s.store.NewID(),
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		CreditBalance: decimal.Zero,
		CreatedAt:     s.store.Now(),
	}
	err := s.store.Mutate(ctx, func(st *domain.State) error {
		st.Customers = append(st.Customers, customer)
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create customer")
		return nil, err
	}

	s.LogInfo(ctx, "Customer created", slog.String("customer_id", customer.ID))
	return &customer, nil
}

// UpdateCustomer never touches the credit balance.
func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var updated domain.Customer
	err := s.store.Mutate(ctx, func(st *domain.State) error {
		i := st.CustomerIndex(customerID)
		if i < 0 {
			return notFound("customer", customerID)
		}
		c := &st.Customers[i]
		if req.Name != nil {
			c.Name = *req.Name
		}
		if req.Phone != nil {
			c.Phone = *req.Phone
		}
		if req.Email != nil {
			c.Email = *req.Email
		}
		if req.Address != nil {
			c.Address = *req.Address
		}
		updated = *c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID string) error {
	err := s.store.Mutate(ctx, func(st *domain.State) error {
		i := st.CustomerIndex(customerID)
		if i < 0 {
			return notFound("customer", customerID)
		}
		st.Customers = slices.Delete(st.Customers, i, i+1)
		return nil
	})
	if err != nil {
		return err
	}
	s.LogInfo(ctx, "Customer deleted", slog.String("customer_id", customerID))
	return nil
}

func (s *customerService) AdjustCustomerBalance(ctx context.Context, customerID string, amount decimal.Decimal) (*domain.Customer, error) {
	var updated domain.Customer
	err := s.store.Mutate(ctx, func(st *domain.State) error {
		i := st.CustomerIndex(customerID)
		if i < 0 {
			return notFound("customer", customerID)
		}
		st.Customers[i].CreditBalance = st.Customers[i].CreditBalance.Add(amount)
		updated = st.Customers[i]
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Customer balance adjusted",
		slog.String("customer_id", customerID),
		slog.String("amount", amount.String()),
		slog.String("balance", updated.CreditBalance.String()))
	return &updated, nil
}

type supplierService struct {
	BaseService
	store *StateContainer
}

// NewSupplierService creates the supplier service.
func NewSupplierService(store *StateContainer) portssvc.SupplierSvcFacade {
	return &supplierService{store: store}
}

func (s *supplierService) GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	var found domain.Supplier
	err := s.store.View(func(st *domain.State) error {
		i := st.SupplierIndex(supplierID)
		if i < 0 {
			return notFound("supplier", supplierID)
		}
		found = st.Suppliers[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}

func (s *supplierService) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	var suppliers []domain.Supplier
	s.store.Read(func(st *domain.State) {
		suppliers = slices.Clone(st.Suppliers)
	})
	return suppliers, nil
}

func (s *supplierService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*domain.Supplier, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	supplier := domain.Supplier{
		ID:            s.store.NewID(),
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		ContactPerson: req.ContactPerson,
		CreatedAt:     s.store.Now(),
	}
	err := s.store.Mutate(ctx, func(st *domain.State) error {
		st.Suppliers = append(st.Suppliers, supplier)
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create supplier")
		return nil, err
	}

	s.LogInfo(ctx, "Supplier created", slog.String("supplier_id", supplier.ID))
	return &supplier, nil
}

func (s *supplierService) UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest) (*domain.Supplier, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var updated domain.Supplier
	err := s.store.Mutate(ctx, func(st *domain.State) error {
		i := st.SupplierIndex(supplierID)
		if i < 0 {
			return notFound("supplier", supplierID)
		}
		sp := &st.Suppliers[i]
		if req.Name != nil {
			sp.Name = *req.Name
		}
		if req.Phone != nil {
			sp.Phone = *req.Phone
		}
		if req.Email != nil {
			sp.Email = *req.Email
		}
		if req.Address != nil {
			sp.Address = *req.Address
		}
		if req.ContactPerson != nil {
			sp.ContactPerson = *req.ContactPerson
		}
		updated = *sp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *supplierService) DeleteSupplier(ctx context.Context, supplierID string) error {
	err := s.store.Mutate(ctx, func(st *domain.State) error {
		i := st.SupplierIndex(supplierID)
		if i < 0 {
			return notFound("supplier", supplierID)
		}
		if st.SupplierInUse(supplierID) {
			return fmt.Errorf("supplier %q: %w", supplierID, apperrors.ErrSupplierInUse)
		}
		st.Suppliers = slices.Delete(st.Suppliers, i, i+1)
		return nil
	})
	if err != nil {
		return err
	}
	s.LogInfo(ctx, "Supplier deleted", slog.String("supplier_id", supplierID))
	return nil
}
