package generator

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func writeTestDataset(t *testing.T) (*Dataset, string) {
	t.Helper()
	ds := generate(t, 123, testParams())
	dir := t.TempDir()
	if err := WriteFiles(ds, filepath.Join(dir, "raw")); err != nil {
		t.Fatalf("WriteFiles failed: %v", err)
	}
	return ds, filepath.Join(dir, "raw")
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", path, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse %s: %v", path, err)
	}
	return records
}

func TestWriteFilesCreatesAllFiles(t *testing.T) {
	ds, dir := writeTestDataset(t)

	expected := map[string]int{
		CustomersFile:  len(ds.Customers),
		ProductsFile:   len(ds.Products),
		OrdersFile:     len(ds.Orders),
		OrderItemsFile: len(ds.Items),
		PaymentsFile:   len(ds.Payments),
	}

	for name, rows := range expected {
		records := readCSV(t, filepath.Join(dir, name))
		if len(records) != rows+1 {
			t.Errorf("%s: expected %d lines (header + %d rows), got %d", name, rows+1, rows, len(records))
		}
		if len(records) < 2 {
			t.Errorf("%s: expected header plus at least one data row", name)
		}
	}
}

func TestWriteFilesHeaders(t *testing.T) {
	_, dir := writeTestDataset(t)

	expected := map[string][]string{
		CustomersFile:  {"id", "first_name", "last_name", "email", "country"},
		ProductsFile:   {"id", "name", "category", "price"},
		OrdersFile:     {"id", "customer_id", "order_date", "status"},
		OrderItemsFile: {"id", "order_id", "product_id", "quantity", "unit_price"},
		PaymentsFile:   {"id", "order_id", "payment_method", "amount", "paid_at"},
	}

	for name, header := range expected {
		records := readCSV(t, filepath.Join(dir, name))
		if !reflect.DeepEqual(records[0], header) {
			t.Errorf("%s: expected header %v, got %v", name, header, records[0])
		}
	}
}

func TestWriteFilesFieldFormats(t *testing.T) {
	_, dir := writeTestDataset(t)

	moneyRe := regexp.MustCompile(`^\d+\.\d{2}$`)

	payments := readCSV(t, filepath.Join(dir, PaymentsFile))
	for _, row := range payments[1:] {
		if !moneyRe.MatchString(row[3]) {
			t.Errorf("Payment amount %q is not a two-decimal value", row[3])
		}
		if _, err := time.Parse(time.RFC3339, row[4]); err != nil {
			t.Errorf("paid_at %q is not RFC3339: %v", row[4], err)
		}
	}

	orders := readCSV(t, filepath.Join(dir, OrdersFile))
	for _, row := range orders[1:] {
		if _, err := time.Parse(time.RFC3339, row[2]); err != nil {
			t.Errorf("order_date %q is not RFC3339: %v", row[2], err)
		}
	}

	products := readCSV(t, filepath.Join(dir, ProductsFile))
	for _, row := range products[1:] {
		if !moneyRe.MatchString(row[3]) {
			t.Errorf("Product price %q is not a two-decimal value", row[3])
		}
	}
}

func TestWriteFilesManifest(t *testing.T) {
	ds, dir := writeTestDataset(t)

	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		t.Fatalf("Failed to read manifest: %v", err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatalf("Failed to parse manifest: %v", err)
	}

	if m.Seed != ds.Seed {
		t.Errorf("Expected manifest seed %d, got %d", ds.Seed, m.Seed)
	}
	if len(m.Files) != 5 {
		t.Fatalf("Expected 5 manifest files, got %d", len(m.Files))
	}
	for _, f := range m.Files {
		if f.Name == OrderItemsFile && f.Rows != len(ds.Items) {
			t.Errorf("Manifest reports %d order item rows, dataset has %d", f.Rows, len(ds.Items))
		}
	}
}

func TestWriteFilesIdenticalBytesForSameSeed(t *testing.T) {
	p := testParams()
	dirA := t.TempDir()
	dirB := t.TempDir()

	for _, dir := range []string{dirA, dirB} {
		ds, err := New(123, testAnchor).Generate(p)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if err := WriteFiles(ds, dir); err != nil {
			t.Fatalf("WriteFiles failed: %v", err)
		}
	}

	files := []string{CustomersFile, ProductsFile, OrdersFile, OrderItemsFile, PaymentsFile, ManifestFile}
	for _, name := range files {
		a, err := os.ReadFile(filepath.Join(dirA, name))
		if err != nil {
			t.Fatalf("Failed to read %s: %v", name, err)
		}
		b, err := os.ReadFile(filepath.Join(dirB, name))
		if err != nil {
			t.Fatalf("Failed to read %s: %v", name, err)
		}
		if string(a) != string(b) {
			t.Errorf("%s differs between runs with identical seed and anchor", name)
		}
	}
}

func TestWriteFilesScenarioBounds(t *testing.T) {
	// counts {5,4,8,2} with seed 123: order_items.csv must hold 8-16 data rows
	_, dir := writeTestDataset(t)

	records := readCSV(t, filepath.Join(dir, OrderItemsFile))
	dataRows := len(records) - 1
	if dataRows < 8 || dataRows > 16 {
		t.Errorf("Expected between 8 and 16 order item rows, got %d", dataRows)
	}
}
