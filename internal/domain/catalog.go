package domain

import "fmt"

// ProductID is the catalog key the storefront sends in a cart.
type ProductID string

// Product is immutable once the catalog is built.
type Product struct {
	ID ProductID
	// UnitAmount is in minor currency units.
	UnitAmount int64
	// Currency is a lowercase ISO 4217 code.
	Currency string
	Name     string
	Image    string
}

// Catalog is a read-only product lookup shared by all requests.
type Catalog struct {
	products map[ProductID]Product
}

func NewCatalog(products ...Product) (*Catalog, error) {
	c := &Catalog{products: make(map[ProductID]Product, len(products))}
	for _, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("product id is required")
		}
		if p.UnitAmount <= 0 {
			return nil, fmt.Errorf("product %s: unit amount must be positive", p.ID)
		}
		if _, dup := c.products[p.ID]; dup {
			return nil, fmt.Errorf("product %s: duplicate id", p.ID)
		}
		c.products[p.ID] = p
	}
	return c, nil
}

// DefaultCatalog is the storefront's product list, prices in sen.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(
		Product{
			ID:         "apple",
			UnitAmount: 1200,
			Currency:   "myr",
			Name:       "Sabah Organic Apple (1 kg)",
			Image:      "https://images.unsplash.com/photo-1567359781514-3b964e2b04d6?w=200",
		},
		Product{
			ID:         "honey",
			UnitAmount: 4500,
			Currency:   "myr",
			Name:       "Local Wild Honey (250g)",
			Image:      "https://images.unsplash.com/photo-1587049352861-d91d84f3f990?w=200",
		},
		Product{
			ID:         "spice",
			UnitAmount: 1500,
			Currency:   "myr",
			Name:       "Traditional Spice Mix (100g)",
			Image:      "https://images.unsplash.com/photo-1596040299140-b65b43a08a99?w=200",
		},
	)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Lookup(id ProductID) (Product, bool) {
	p, ok := c.products[id]
	return p, ok
}

func (c *Catalog) Len() int {
	return len(c.products)
}
