package generator

import "time"

type Customer struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Country   string
}

type Product struct {
	ID       string
	Name     string
	Category string
	Price    float64
}

type Order struct {
	ID         string
	CustomerID string
	OrderDate  time.Time
	Status     string
}

type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	// UnitPrice is the product price captured at generation time.
	// Later changes to the product never flow back into the item.
	UnitPrice float64
}

type Payment struct {
	ID      string
	OrderID string
	Method  string
	Amount  float64
	PaidAt  time.Time
}

// Dataset holds one complete generation run before it is flushed to disk.
type Dataset struct {
	Seed        int64
	GeneratedAt time.Time

	Customers []Customer
	Products  []Product
	Orders    []Order
	Items     []OrderItem
	Payments  []Payment
}
