package generator

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// faker produces fake-but-plausible values from a shared seeded source.
// Every draw goes through the one *rand.Rand so a seed fully determines
// the output stream.
type faker struct {
	rng *rand.Rand
}

var firstNames = []string{
	"John", "Jane", "Alice", "Bob", "Charlie", "Diana", "Eve", "Frank",
	"Grace", "Henry", "Isabel", "Jack", "Karen", "Liam", "Maria", "Noah",
	"Olivia", "Peter", "Quinn", "Rosa", "Sam", "Tina", "Victor", "Wendy",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Lopez", "Wilson", "Anderson",
	"Taylor", "Thomas", "Moore", "Jackson", "White", "Harris", "Clark",
}

var countries = []string{
	"United States", "Canada", "Mexico", "Brazil", "United Kingdom",
	"France", "Germany", "Spain", "Italy", "Netherlands", "Poland",
	"Sweden", "Norway", "Japan", "South Korea", "India", "Australia",
	"New Zealand", "South Africa", "Argentina",
}

var productAdjectives = []string{
	"Ergonomic", "Sleek", "Rustic", "Intelligent", "Durable", "Compact",
	"Lightweight", "Refined", "Practical", "Handcrafted", "Modern",
	"Versatile", "Premium", "Essential",
}

var productMaterials = []string{
	"Steel", "Wooden", "Cotton", "Granite", "Leather", "Bamboo",
	"Ceramic", "Linen", "Aluminum", "Glass",
}

var productNouns = []string{
	"Lamp", "Chair", "Keyboard", "Backpack", "Bottle", "Watch", "Speaker",
	"Desk", "Wallet", "Headphones", "Blanket", "Mug", "Notebook", "Stand",
}

func newFaker(rng *rand.Rand) *faker {
	return &faker{rng: rng}
}

// ID returns a random UUID drawn from the seeded source, so identical
// seeds yield identical identifiers.
func (f *faker) ID() string {
	id, err := uuid.NewRandomFromReader(f.rng)
	if err != nil {
		// math/rand sources never fail to read
		panic(err)
	}
	return id.String()
}

func (f *faker) FirstName() string {
	return firstNames[f.rng.Intn(len(firstNames))]
}

func (f *faker) LastName() string {
	return lastNames[f.rng.Intn(len(lastNames))]
}

func (f *faker) Country() string {
	return countries[f.rng.Intn(len(countries))]
}

func (f *faker) ProductName() string {
	return fmt.Sprintf("%s %s %s",
		productAdjectives[f.rng.Intn(len(productAdjectives))],
		productMaterials[f.rng.Intn(len(productMaterials))],
		productNouns[f.rng.Intn(len(productNouns))],
	)
}

// Email builds first.last.<hex suffix>@example.com; the suffix keeps
// generated addresses from colliding on common names.
func (f *faker) Email(first, last string) string {
	return strings.ToLower(fmt.Sprintf("%s.%s.%s@example.com", first, last, f.hexSuffix(6)))
}

const hexDigits = "0123456789abcdef"

func (f *faker) hexSuffix(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(hexDigits[f.rng.Intn(len(hexDigits))])
	}
	return b.String()
}
