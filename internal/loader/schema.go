package loader

// Table is the ordered-column contract for one CSV file and its backing
// SQLite table. The CSV header must match Columns exactly; a reordered or
// renamed header fails the load instead of being silently remapped.
type Table struct {
	Name      string
	File      string
	Columns   []string
	CreateSQL string
}

// Tables lists the five tables in insertion order. Parents come before
// children so foreign keys resolve during the load.
var Tables = []Table{
	{
		Name:    "customers",
		File:    "customers.csv",
		Columns: []string{"id", "first_name", "last_name", "email", "country"},
		CreateSQL: `CREATE TABLE IF NOT EXISTS customers (
			id TEXT PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			email TEXT NOT NULL,
			country TEXT NOT NULL
		)`,
	},
	{
		Name:    "products",
		File:    "products.csv",
		Columns: []string{"id", "name", "category", "price"},
		CreateSQL: `CREATE TABLE IF NOT EXISTS products (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			price REAL NOT NULL
		)`,
	},
	{
		Name:    "orders",
		File:    "orders.csv",
		Columns: []string{"id", "customer_id", "order_date", "status"},
		CreateSQL: `CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			customer_id TEXT NOT NULL REFERENCES customers(id),
			order_date TEXT NOT NULL,
			status TEXT NOT NULL
		)`,
	},
	{
		Name:    "order_items",
		File:    "order_items.csv",
		Columns: []string{"id", "order_id", "product_id", "quantity", "unit_price"},
		CreateSQL: `CREATE TABLE IF NOT EXISTS order_items (
			id TEXT PRIMARY KEY,
			order_id TEXT NOT NULL REFERENCES orders(id),
			product_id TEXT NOT NULL REFERENCES products(id),
			quantity INTEGER NOT NULL,
			unit_price REAL NOT NULL
		)`,
	},
	{
		Name:    "payments",
		File:    "payments.csv",
		Columns: []string{"id", "order_id", "payment_method", "amount", "paid_at"},
		CreateSQL: `CREATE TABLE IF NOT EXISTS payments (
			id TEXT PRIMARY KEY,
			order_id TEXT NOT NULL REFERENCES orders(id),
			payment_method TEXT NOT NULL,
			amount REAL NOT NULL,
			paid_at TEXT NOT NULL
		)`,
	},
}
