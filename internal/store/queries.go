package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jasonnnn886/sheetstore/internal/model"
)

// FindProductByName looks up a product by its exact name.
// Returns ErrNotFound when no product matches.
func (s *Store) FindProductByName(ctx context.Context, name string) (*model.Product, error) {
	var p model.Product
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&p).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

// CreateProduct persists a new product record.
func (s *Store) CreateProduct(ctx context.Context, p *model.Product) error {
	return s.db.WithContext(ctx).Create(p).Error
}

// UpdateProductFields overwrites price and stock on an existing product.
// Name and created_at are left untouched.
func (s *Store) UpdateProductFields(ctx context.Context, id uint, price decimal.Decimal, stock int) error {
	return s.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).
		Updates(map[string]any{"price": price, "stock": stock}).Error
}

// FindCustomerByEmailPhone looks up a customer by the (email, phone) pair.
// Returns ErrNotFound when no customer matches.
func (s *Store) FindCustomerByEmailPhone(ctx context.Context, email, phone string) (*model.Customer, error) {
	var c model.Customer
	err := s.db.WithContext(ctx).Where("email = ? AND phone = ?", email, phone).First(&c).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

// CreateCustomer persists a new customer record.
func (s *Store) CreateCustomer(ctx context.Context, c *model.Customer) error {
	return s.db.WithContext(ctx).Create(c).Error
}

// CreateOrder persists a new order record. CustomerID and ProductID must
// reference existing records.
func (s *Store) CreateOrder(ctx context.Context, o *model.Order) error {
	return s.db.WithContext(ctx).Create(o).Error
}

// Products returns every product, oldest first.
func (s *Store) Products(ctx context.Context) ([]model.Product, error) {
	out := []model.Product{}
	err := s.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

// Customers returns every customer, oldest first.
func (s *Store) Customers(ctx context.Context) ([]model.Customer, error) {
	out := []model.Customer{}
	err := s.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

// Orders returns every order with its customer and product loaded.
func (s *Store) Orders(ctx context.Context) ([]model.Order, error) {
	out := []model.Order{}
	err := s.db.WithContext(ctx).Preload("Customer").Preload("Product").Order("id").Find(&out).Error
	return out, err
}

// SearchProducts returns products whose name contains q (all products when
// q is empty).
func (s *Store) SearchProducts(ctx context.Context, q string) ([]model.Product, error) {
	tx := s.db.WithContext(ctx).Order("id")
	if q != "" {
		tx = tx.Where("name LIKE ?", like(q))
	}
	out := []model.Product{}
	err := tx.Find(&out).Error
	return out, err
}

// SearchCustomers matches q against name, email, phone and address.
func (s *Store) SearchCustomers(ctx context.Context, q string) ([]model.Customer, error) {
	tx := s.db.WithContext(ctx).Order("id")
	if q != "" {
		p := like(q)
		tx = tx.Where("name LIKE ? OR email LIKE ? OR phone LIKE ? OR address LIKE ?", p, p, p, p)
	}
	out := []model.Customer{}
	err := tx.Find(&out).Error
	return out, err
}

// SearchOrders matches q against the customer name, product name and
// status, optionally restricted to a single status.
func (s *Store) SearchOrders(ctx context.Context, q string, status model.OrderStatus) ([]model.Order, error) {
	tx := s.db.WithContext(ctx).
		Joins("JOIN customers ON customers.id = orders.customer_id").
		Joins("JOIN products ON products.id = orders.product_id").
		Preload("Customer").Preload("Product").
		Order("orders.id")
	if q != "" {
		p := like(q)
		tx = tx.Where("customers.name LIKE ? OR products.name LIKE ? OR orders.status LIKE ?", p, p, p)
	}
	if status != "" {
		tx = tx.Where("orders.status = ?", status)
	}
	out := []model.Order{}
	err := tx.Find(&out).Error
	return out, err
}

// Counts returns the number of rows per entity.
func (s *Store) Counts(ctx context.Context) (products, customers, orders int64, err error) {
	db := s.db.WithContext(ctx)
	if err = db.Model(&model.Product{}).Count(&products).Error; err != nil {
		return
	}
	if err = db.Model(&model.Customer{}).Count(&customers).Error; err != nil {
		return
	}
	err = db.Model(&model.Order{}).Count(&orders).Error
	return
}

// DeleteAllOrders removes every order.
func (s *Store) DeleteAllOrders(ctx context.Context) error {
	return s.db.WithContext(ctx).Where("1 = 1").Delete(&model.Order{}).Error
}

// DeleteAllCustomers removes every customer and, first, their orders.
func (s *Store) DeleteAllCustomers(ctx context.Context) error {
	db := s.db.WithContext(ctx)
	if err := db.Where("customer_id IN (?)", db.Model(&model.Customer{}).Select("id")).
		Delete(&model.Order{}).Error; err != nil {
		return err
	}
	return db.Where("1 = 1").Delete(&model.Customer{}).Error
}

// DeleteAllProducts removes every product and, first, their orders.
func (s *Store) DeleteAllProducts(ctx context.Context) error {
	db := s.db.WithContext(ctx)
	if err := db.Where("product_id IN (?)", db.Model(&model.Product{}).Select("id")).
		Delete(&model.Order{}).Error; err != nil {
		return err
	}
	return db.Where("1 = 1").Delete(&model.Product{}).Error
}

// ClearAll wipes all three entities. Orders go first so the customer and
// product deletes never orphan a row, whatever the driver's FK behaviour.
func (s *Store) ClearAll(ctx context.Context) error {
	if err := s.DeleteAllOrders(ctx); err != nil {
		return fmt.Errorf("clear orders: %w", err)
	}
	if err := s.DeleteAllCustomers(ctx); err != nil {
		return fmt.Errorf("clear customers: %w", err)
	}
	if err := s.DeleteAllProducts(ctx); err != nil {
		return fmt.Errorf("clear products: %w", err)
	}
	return nil
}

func like(q string) string {
	return "%" + strings.ReplaceAll(q, "%", `\%`) + "%"
}
