package generator

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	CustomersFile  = "customers.csv"
	ProductsFile   = "products.csv"
	OrdersFile     = "orders.csv"
	OrderItemsFile = "order_items.csv"
	PaymentsFile   = "payments.csv"

	ManifestFile = "manifest.yaml"
)

var (
	customerHeader  = []string{"id", "first_name", "last_name", "email", "country"}
	productHeader   = []string{"id", "name", "category", "price"}
	orderHeader     = []string{"id", "customer_id", "order_date", "status"}
	orderItemHeader = []string{"id", "order_id", "product_id", "quantity", "unit_price"}
	paymentHeader   = []string{"id", "order_id", "payment_method", "amount", "paid_at"}
)

// WriteFiles serializes the dataset into the five CSV files plus a run
// manifest. The directory is created if absent; existing files are
// overwritten.
func WriteFiles(ds *Dataset, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	rows := make([][]string, 0, len(ds.Customers))
	for _, c := range ds.Customers {
		rows = append(rows, []string{c.ID, c.FirstName, c.LastName, c.Email, c.Country})
	}
	if err := writeCSV(filepath.Join(dir, CustomersFile), customerHeader, rows); err != nil {
		return err
	}

	rows = rows[:0]
	for _, p := range ds.Products {
		rows = append(rows, []string{p.ID, p.Name, p.Category, money(p.Price)})
	}
	if err := writeCSV(filepath.Join(dir, ProductsFile), productHeader, rows); err != nil {
		return err
	}

	rows = rows[:0]
	for _, o := range ds.Orders {
		rows = append(rows, []string{o.ID, o.CustomerID, timestamp(o.OrderDate), o.Status})
	}
	if err := writeCSV(filepath.Join(dir, OrdersFile), orderHeader, rows); err != nil {
		return err
	}

	rows = rows[:0]
	for _, it := range ds.Items {
		rows = append(rows, []string{it.ID, it.OrderID, it.ProductID, strconv.Itoa(it.Quantity), money(it.UnitPrice)})
	}
	if err := writeCSV(filepath.Join(dir, OrderItemsFile), orderItemHeader, rows); err != nil {
		return err
	}

	rows = rows[:0]
	for _, p := range ds.Payments {
		rows = append(rows, []string{p.ID, p.OrderID, p.Method, money(p.Amount), timestamp(p.PaidAt)})
	}
	if err := writeCSV(filepath.Join(dir, PaymentsFile), paymentHeader, rows); err != nil {
		return err
	}

	return writeManifest(ds, dir)
}

func writeCSV(path string, header []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows to %s: %w", path, err)
	}
	w.Flush()
	return w.Error()
}

type manifest struct {
	GeneratedAt string         `yaml:"generated_at"`
	Seed        int64          `yaml:"seed"`
	Files       []manifestFile `yaml:"files"`
}

type manifestFile struct {
	Name string `yaml:"name"`
	Rows int    `yaml:"rows"`
}

func writeManifest(ds *Dataset, dir string) error {
	m := manifest{
		GeneratedAt: timestamp(ds.GeneratedAt),
		Seed:        ds.Seed,
		Files: []manifestFile{
			{Name: CustomersFile, Rows: len(ds.Customers)},
			{Name: ProductsFile, Rows: len(ds.Products)},
			{Name: OrdersFile, Rows: len(ds.Orders)},
			{Name: OrderItemsFile, Rows: len(ds.Items)},
			{Name: PaymentsFile, Rows: len(ds.Payments)},
		},
	}

	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	path := filepath.Join(dir, ManifestFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// money renders amounts with exactly two decimals so CSV bytes match the
// rounded values the generator computed.
func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
