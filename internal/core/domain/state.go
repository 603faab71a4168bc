package domain

import (
	"maps"
	"slices"
	"time"
)

// State is every record the ledger owns. Collections keep insertion order.
type State struct {
	Categories         []Category          `json:"categories"`
	Brands             []Brand             `json:"brands"`
	Attributes         []Attribute         `json:"attributes"`
	Products           []Product           `json:"products"`
	Customers          []Customer          `json:"customers"`
	Suppliers          []Supplier          `json:"suppliers"`
	Sales              []Sale              `json:"sales"`
	CreditDebitRecords []CreditDebitRecord `json:"creditDebitRecords"`
	StockMovements     []StockMovement     `json:"stockMovements"`
	Users              []User              `json:"users"`
	CompanyProfile     *CompanyProfile     `json:"companyProfile,omitempty"`
}

// NewState returns an empty state with non-nil collections.
func NewState() *State {
	s := &State{}
	s.Normalize()
	return s
}

// Normalize replaces nil collections with empty ones, e.g. after decoding.
func (s *State) Normalize() {
	if s.Categories == nil {
		s.Categories = []Category{}
	}
	if s.Brands == nil {
		s.Brands = []Brand{}
	}
	if s.Attributes == nil {
		s.Attributes = []Attribute{}
	}
	if s.Products == nil {
		s.Products = []Product{}
	}
	if s.Customers == nil {
		s.Customers = []Customer{}
	}
	if s.Suppliers == nil {
		s.Suppliers = []Supplier{}
	}
	if s.Sales == nil {
		s.Sales = []Sale{}
	}
	if s.CreditDebitRecords == nil {
		s.CreditDebitRecords = []CreditDebitRecord{}
	}
	if s.StockMovements == nil {
		s.StockMovements = []StockMovement{}
	}
	if s.Users == nil {
		s.Users = []User{}
	}
}

// Clone returns a deep copy. Mutating the copy never affects s.
func (s *State) Clone() *State {
	c := &State{
		Categories:     slices.Clone(s.Categories),
		Brands:         slices.Clone(s.Brands),
		Suppliers:      slices.Clone(s.Suppliers),
		Customers:      slices.Clone(s.Customers),
		Sales:          slices.Clone(s.Sales),
		StockMovements: slices.Clone(s.StockMovements),
	}

	c.Attributes = make([]Attribute, len(s.Attributes))
	for i, a := range s.Attributes {
		a.Options = slices.Clone(a.Options)
		c.Attributes[i] = a
	}

	c.Products = make([]Product, len(s.Products))
	for i, p := range s.Products {
		p.Attributes = maps.Clone(p.Attributes)
		c.Products[i] = p
	}

	c.CreditDebitRecords = make([]CreditDebitRecord, len(s.CreditDebitRecords))
	for i, r := range s.CreditDebitRecords {
		r.Payments = slices.Clone(r.Payments)
		r.DueDate = cloneTime(r.DueDate)
		c.CreditDebitRecords[i] = r
	}

	c.Users = make([]User, len(s.Users))
	for i, u := range s.Users {
		u.LastLogin = cloneTime(u.LastLogin)
		u.RefreshTokenExpiryTime = cloneTime(u.RefreshTokenExpiryTime)
		c.Users[i] = u
	}

	if s.CompanyProfile != nil {
		p := *s.CompanyProfile
		c.CompanyProfile = &p
	}

	c.Normalize()
	return c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// CategoryIndex returns the position of the category with id, or -1.
func (s *State) CategoryIndex(id string) int {
	return slices.IndexFunc(s.Categories, func(c Category) bool { return c.ID == id })
}

// BrandIndex returns the position of the brand with id, or -1.
func (s *State) BrandIndex(id string) int {
	return slices.IndexFunc(s.Brands, func(b Brand) bool { return b.ID == id })
}

// AttributeIndex returns the position of the attribute with id, or -1.
func (s *State) AttributeIndex(id string) int {
	return slices.IndexFunc(s.Attributes, func(a Attribute) bool { return a.ID == id })
}

// ProductIndex returns the position of the product with id, or -1.
func (s *State) ProductIndex(id string) int {
	return slices.IndexFunc(s.Products, func(p Product) bool { return p.ID == id })
}

// ProductIndexBySKU returns the position of the product with sku, or -1.
func (s *State) ProductIndexBySKU(sku string) int {
	return slices.IndexFunc(s.Products, func(p Product) bool { return p.SKU == sku })
}

// CustomerIndex returns the position of the customer with id, or -1.
func (s *State) CustomerIndex(id string) int {
	return slices.IndexFunc(s.Customers, func(c Customer) bool { return c.ID == id })
}

// SupplierIndex returns the position of the supplier with id, or -1.
func (s *State) SupplierIndex(id string) int {
	return slices.IndexFunc(s.Suppliers, func(sp Supplier) bool { return sp.ID == id })
}

// SaleIndex returns the position of the sale with id, or -1.
func (s *State) SaleIndex(id string) int {
	return slices.IndexFunc(s.Sales, func(sl Sale) bool { return sl.ID == id })
}

// RecordIndex returns the position of the credit/debit record with id, or -1.
func (s *State) RecordIndex(id string) int {
	return slices.IndexFunc(s.CreditDebitRecords, func(r CreditDebitRecord) bool { return r.ID == id })
}

// RecordIndexBySale returns the position of the record linked to saleID, or -1.
func (s *State) RecordIndexBySale(saleID string) int {
	return slices.IndexFunc(s.CreditDebitRecords, func(r CreditDebitRecord) bool { return r.SaleID == saleID })
}

// UserIndex returns the position of the user with id, or -1.
func (s *State) UserIndex(id string) int {
	return slices.IndexFunc(s.Users, func(u User) bool { return u.ID == id })
}

// UserIndexByUsername returns the position of the user with username, or -1.
func (s *State) UserIndexByUsername(username string) int {
	return slices.IndexFunc(s.Users, func(u User) bool { return u.Username == username })
}

// SupplierInUse reports whether any product references supplierID.
func (s *State) SupplierInUse(supplierID string) bool {
	return slices.ContainsFunc(s.Products, func(p Product) bool { return p.SupplierID == supplierID })
}
