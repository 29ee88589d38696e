package catalog

// Provider serves the static catalog plus the category/supplier lookup
// tables with their precomputed product counts.
type Provider struct {
	products   []Product
	categories []Category
	suppliers  []Supplier
	byID       map[int]Product
}

// NewProvider indexes the given catalog. Counts on categories and suppliers
// are derived from the product list, except the "all" entries which count the
// whole catalog.
func NewProvider(products []Product, categories []Category, suppliers []Supplier) *Provider {
	byID := make(map[int]Product, len(products))
	byCategory := map[string]int{}
	bySupplier := map[string]int{}
	for _, p := range products {
		byID[p.ID] = p
		byCategory[p.Category]++
		bySupplier[p.Supplier]++
	}

	cats := make([]Category, len(categories))
	for i, c := range categories {
		if c.ID == AllFilter {
			c.Count = len(products)
		} else {
			c.Count = byCategory[c.ID]
		}
		cats[i] = c
	}

	sups := make([]Supplier, len(suppliers))
	for i, s := range suppliers {
		if s.ID == AllFilter {
			s.Products = len(products)
		} else {
			s.Products = bySupplier[s.ID]
		}
		sups[i] = s
	}

	return &Provider{
		products:   products,
		categories: cats,
		suppliers:  sups,
		byID:       byID,
	}
}

// NewDefaultProvider returns the provider over the built-in catalog.
func NewDefaultProvider() *Provider {
	return NewProvider(defaultProducts, defaultCategories, defaultSuppliers)
}

// Products returns the full, unfiltered catalog.
func (p *Provider) Products() []Product {
	return p.products
}

// Categories returns the category lookup table.
func (p *Provider) Categories() []Category {
	return p.categories
}

// Suppliers returns the supplier lookup table.
func (p *Provider) Suppliers() []Supplier {
	return p.suppliers
}

// ProductByID looks up one product. The second return reports existence.
func (p *Provider) ProductByID(id int) (Product, bool) {
	product, ok := p.byID[id]
	return product, ok
}
