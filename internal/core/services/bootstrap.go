package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/inventory_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_ledger_app/internal/utils"
	"github.com/shopspring/decimal"
)

// BootstrapOptions controls what Bootstrap seeds on first start.
type BootstrapOptions struct {
	// AdminPassword for the default administrator. When empty a random one is
	// generated and logged once.
	AdminPassword string
	// SampleData seeds a small catalog into an empty state.
	SampleData bool
}

// Bootstrap seeds the default administrator, the company profile and, if
// requested, the sample catalog. Each step only runs against empty state, so
// calling it on every start is safe.
func Bootstrap(ctx context.Context, store *StateContainer, svc *portssvc.ServiceContainer, opts BootstrapOptions) error {
	logger := store.GetLogger(ctx)

	password := opts.AdminPassword
	generated := false
	if password == "" {
		random, err := utils.GenerateSecureRandomString(12)
		if err != nil {
			return fmt.Errorf("failed to generate admin password: %w", err)
		}
		password = random
		generated = true
	}

	created, err := svc.User.EnsureDefaultAdmin(ctx, password)
	if err != nil {
		return fmt.Errorf("failed to seed default admin: %w", err)
	}
	if created && generated {
		logger.Warn("Generated password for the default administrator; change it after first login",
			slog.String("username", DefaultAdminUsername),
			slog.String("password", password))
	}

	if err := svc.Company.EnsureDefaultProfile(ctx); err != nil {
		return fmt.Errorf("failed to seed company profile: %w", err)
	}

	if opts.SampleData {
		if err := seedSampleCatalog(ctx, store); err != nil {
			return fmt.Errorf("failed to seed sample catalog: %w", err)
		}
	}
	return nil
}

// seedSampleCatalog fills an empty catalog with a few categories, brands,
// attributes and products.
func seedSampleCatalog(ctx context.Context, store *StateContainer) error {
	catalogEmpty := false
	store.Read(func(st *domain.State) {
		catalogEmpty = len(st.Categories) == 0 && len(st.Brands) == 0 && len(st.Products) == 0
	})
	if !catalogEmpty {
		return nil
	}

	now := store.Now()
	seeded := false

	err := store.Mutate(ctx, func(st *domain.State) error {
		if len(st.Categories) > 0 || len(st.Brands) > 0 || len(st.Products) > 0 {
			return nil
		}

		for _, name := range []string{"Electronics", "Clothing", "Books"} {
			st.Categories = append(st.Categories, domain.Category{ID: store.NewID(), Name: name, CreatedAt: now})
		}
		for _, name := range []string{"Apple", "Samsung", "Nike"} {
			st.Brands = append(st.Brands, domain.Brand{ID: store.NewID(), Name: name, CreatedAt: now})
		}
		st.Attributes = append(st.Attributes,
			domain.Attribute{ID: store.NewID(), Name: "Color", Type: domain.AttributeSelect,
				Options: []string{"Red", "Blue", "Green", "Black", "White"}, CreatedAt: now},
			domain.Attribute{ID: store.NewID(), Name: "Size", Type: domain.AttributeSelect,
				Options: []string{"XS", "S", "M", "L", "XL"}, CreatedAt: now},
			domain.Attribute{ID: store.NewID(), Name: "Weight", Type: domain.AttributeNumber, CreatedAt: now},
		)

		electronics := st.Categories[0].ID
		st.Products = append(st.Products,
			domain.Product{
				ID:          store.NewID(),
				Name:        "iPhone 15",
				Description: "Latest iPhone model",
				Price:       decimal.NewFromInt(1500000),
				Cost:        decimal.NewFromInt(1200000),
				SKU:         "IPH15-001",
				Stock:       50,
				MinStock:    10,
				CategoryID:  electronics,
				BrandID:     st.Brands[0].ID,
				CreatedAt:   now,
			},
			domain.Product{
				ID:          store.NewID(),
				Name:        "Samsung Galaxy S24",
				Description: "Latest Samsung flagship",
				Price:       decimal.NewFromInt(1300000),
				Cost:        decimal.NewFromInt(1000000),
				SKU:         "SGS24-001",
				Stock:       30,
				MinStock:    5,
				CategoryID:  electronics,
				BrandID:     st.Brands[1].ID,
				CreatedAt:   now,
			},
		)
		seeded = true
		return nil
	})
	if err != nil {
		return err
	}
	if seeded {
		store.LogInfo(ctx, "Sample catalog seeded")
	}
	return nil
}
