// Package generator produces a synthetic e-commerce dataset from a single
// seeded random source. Collections are generated in dependency order
// (customers, products, orders, order items, payments) so every reference
// points at a record that already exists.
package generator

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

type Params struct {
	Customers        int
	Products         int
	Orders           int
	MaxItemsPerOrder int
}

func (p Params) validate() error {
	if p.Customers <= 0 {
		return fmt.Errorf("customer count must be positive, got %d", p.Customers)
	}
	if p.Products <= 0 {
		return fmt.Errorf("product count must be positive, got %d", p.Products)
	}
	if p.Orders <= 0 {
		return fmt.Errorf("order count must be positive, got %d", p.Orders)
	}
	if p.MaxItemsPerOrder < 1 {
		return fmt.Errorf("max items per order must be at least 1, got %d", p.MaxItemsPerOrder)
	}
	return nil
}

type Generator struct {
	seed   int64
	anchor time.Time
	rng    *rand.Rand
	fake   *faker
}

// New returns a generator whose output is fully determined by seed and
// anchor. The anchor is the "now" that order dates are backdated from;
// callers wanting reproducible timestamps must pass a fixed one.
func New(seed int64, anchor time.Time) *Generator {
	rng := rand.New(rand.NewSource(seed))
	return &Generator{
		seed:   seed,
		anchor: anchor.UTC(),
		rng:    rng,
		fake:   newFaker(rng),
	}
}

func (g *Generator) Generate(p Params) (*Dataset, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	customers := g.generateCustomers(p.Customers)
	products := g.generateProducts(p.Products)
	orders := g.generateOrders(customers, p.Orders)
	items := g.generateOrderItems(orders, products, p.MaxItemsPerOrder)
	payments := g.generatePayments(orders, items)

	return &Dataset{
		Seed:        g.seed,
		GeneratedAt: g.anchor,
		Customers:   customers,
		Products:    products,
		Orders:      orders,
		Items:       items,
		Payments:    payments,
	}, nil
}

func (g *Generator) generateCustomers(count int) []Customer {
	customers := make([]Customer, 0, count)
	for i := 0; i < count; i++ {
		first := g.fake.FirstName()
		last := g.fake.LastName()
		customers = append(customers, Customer{
			ID:        g.fake.ID(),
			FirstName: first,
			LastName:  last,
			Email:     g.fake.Email(first, last),
			Country:   g.fake.Country(),
		})
	}
	return customers
}

var productCategories = []string{"Electronics", "Apparel", "Home", "Sports", "Beauty"}

const (
	minPrice = 5.0
	maxPrice = 500.0
)

func (g *Generator) generateProducts(count int) []Product {
	products := make([]Product, 0, count)
	for i := 0; i < count; i++ {
		products = append(products, Product{
			ID:       g.fake.ID(),
			Name:     g.fake.ProductName(),
			Category: productCategories[g.rng.Intn(len(productCategories))],
			Price:    round2(minPrice + g.rng.Float64()*(maxPrice-minPrice)),
		})
	}
	return products
}

// orderStatuses maps each status to its cumulative upper bound, so a
// uniform draw r picks the first entry with r < bound. A draw landing
// exactly on a bound falls into the next bucket.
var orderStatuses = []struct {
	name  string
	bound float64
}{
	{"pending", 0.20},
	{"processing", 0.70},
	{"fulfilled", 0.95},
	{"cancelled", 1.00},
}

func statusFor(r float64) string {
	for _, s := range orderStatuses[:len(orderStatuses)-1] {
		if r < s.bound {
			return s.name
		}
	}
	return orderStatuses[len(orderStatuses)-1].name
}

const orderDateWindowDays = 180

func (g *Generator) generateOrders(customers []Customer, count int) []Order {
	orders := make([]Order, 0, count)
	for i := 0; i < count; i++ {
		orders = append(orders, Order{
			ID:         g.fake.ID(),
			CustomerID: customers[g.rng.Intn(len(customers))].ID,
			OrderDate:  g.anchor.AddDate(0, 0, -g.rng.Intn(orderDateWindowDays+1)),
			Status:     statusFor(g.rng.Float64()),
		})
	}
	return orders
}

func (g *Generator) generateOrderItems(orders []Order, products []Product, maxItems int) []OrderItem {
	var items []OrderItem
	for _, order := range orders {
		n := 1 + g.rng.Intn(maxItems)
		for i := 0; i < n; i++ {
			product := products[g.rng.Intn(len(products))]
			items = append(items, OrderItem{
				ID:        g.fake.ID(),
				OrderID:   order.ID,
				ProductID: product.ID,
				Quantity:  1 + g.rng.Intn(5),
				UnitPrice: product.Price,
			})
		}
	}
	return items
}

var paymentMethods = []string{"card", "paypal", "bank_transfer", "gift_card"}

func (g *Generator) generatePayments(orders []Order, items []OrderItem) []Payment {
	totals := make(map[string]float64, len(orders))
	for _, item := range items {
		totals[item.OrderID] += float64(item.Quantity) * item.UnitPrice
	}

	payments := make([]Payment, 0, len(orders))
	for _, order := range orders {
		payments = append(payments, Payment{
			ID:      g.fake.ID(),
			OrderID: order.ID,
			Method:  paymentMethods[g.rng.Intn(len(paymentMethods))],
			Amount:  round2(totals[order.ID]),
			PaidAt:  order.OrderDate.Add(time.Duration(1+g.rng.Intn(48)) * time.Hour),
		})
	}
	return payments
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
