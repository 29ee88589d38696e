package catalog

import "github.com/shopspring/decimal"

// AllFilter is the sentinel category/supplier id meaning "no filter".
const AllFilter = "all"

func clp(amount int64) decimal.Decimal {
	return decimal.NewFromInt(amount)
}

func pct(v float64) *float64 {
	return &v
}

// defaultProducts is the promotional catalog the storefront ships with.
// The data is compiled in; there is no server-side catalog source.
var defaultProducts = []Product{
	{
		ID: 1, Name: "Camiseta Básica", SKU: "TEX-CAM-001", Category: "textil",
		BasePrice: clp(3500), Stock: 480, Supplier: "textiles-andinos",
		Colors: []string{"blanco", "negro", "azul"},
		Sizes:  []string{"S", "M", "L", "XL"},
		PriceBreaks: []PriceBreak{
			{MinQty: 25, Price: clp(3200), Discount: pct(9)},
			{MinQty: 100, Price: clp(2900), Discount: pct(17)},
		},
	},
	{
		ID: 2, Name: "Polerón con Capucha", SKU: "TEX-POL-014", Category: "textil",
		BasePrice: clp(12990), Stock: 150, Supplier: "textiles-andinos",
		Colors: []string{"gris", "negro"},
		Sizes:  []string{"M", "L", "XL"},
		PriceBreaks: []PriceBreak{
			{MinQty: 10, Price: clp(11990), Discount: pct(8)},
			{MinQty: 50, Price: clp(10990), Discount: pct(15)},
		},
	},
	{
		ID: 3, Name: "Taza Cerámica Clásica", SKU: "DRK-TAZ-002", Category: "drinkware",
		BasePrice: clp(2990), Stock: 900, Supplier: "importadora-pacifico",
		Colors: []string{"blanco", "rojo"},
		PriceBreaks: []PriceBreak{
			{MinQty: 36, Price: clp(2590), Discount: pct(13)},
			{MinQty: 144, Price: clp(2190), Discount: pct(27)},
		},
	},
	{
		ID: 4, Name: "Botella Térmica 500ml", SKU: "DRK-BOT-021", Category: "drinkware",
		BasePrice: clp(8990), Stock: 320, Supplier: "importadora-pacifico",
		Colors: []string{"plata", "negro", "azul"},
		PriceBreaks: []PriceBreak{
			{MinQty: 20, Price: clp(8290), Discount: pct(8)},
		},
	},
	{
		ID: 5, Name: "Bolsa Ecológica Algodón", SKU: "ECO-BOL-005", Category: "eco",
		BasePrice: clp(1990), Stock: 1200, Supplier: "verde-austral",
		Colors: []string{"crudo"},
		PriceBreaks: []PriceBreak{
			{MinQty: 50, Price: clp(1690), Discount: pct(15)},
			{MinQty: 200, Price: clp(1390), Discount: pct(30)},
		},
	},
	{
		ID: 6, Name: "Libreta Kraft A5", SKU: "OFI-LIB-009", Category: "oficina",
		BasePrice: clp(2490), Stock: 600, Supplier: "verde-austral",
		PriceBreaks: []PriceBreak{
			{MinQty: 30, Price: clp(2190), Discount: pct(12)},
		},
	},
	{
		ID: 7, Name: "Bolígrafo Metálico", SKU: "OFI-BOL-031", Category: "oficina",
		BasePrice: clp(990), Stock: 2500, Supplier: "grafica-central",
		Colors: []string{"plata", "azul", "negro"},
		PriceBreaks: []PriceBreak{
			{MinQty: 100, Price: clp(890), Discount: pct(10)},
			{MinQty: 500, Price: clp(790), Discount: pct(20)},
		},
	},
	{
		ID: 8, Name: "Pendrive 32GB Bambú", SKU: "TEC-PEN-017", Category: "tecnologia",
		BasePrice: clp(6990), Stock: 260, Supplier: "importadora-pacifico",
		PriceBreaks: []PriceBreak{
			{MinQty: 25, Price: clp(6490), Discount: pct(7)},
			{MinQty: 100, Price: clp(5990), Discount: pct(14)},
		},
	},
	{
		ID: 9, Name: "Batería Externa 10000mAh", SKU: "TEC-BAT-008", Category: "tecnologia",
		BasePrice: clp(14990), Stock: 90, Supplier: "grafica-central",
	},
	{
		ID: 10, Name: "Gorro Bordado", SKU: "TEX-GOR-044", Category: "textil",
		BasePrice: clp(4590), Stock: 340, Supplier: "textiles-andinos",
		Colors: []string{"negro", "beige"},
		PriceBreaks: []PriceBreak{
			{MinQty: 24, Price: clp(4190), Discount: pct(9)},
		},
	},
}

var defaultCategories = []Category{
	{ID: AllFilter, Name: "Todos", Icon: "apps"},
	{ID: "textil", Name: "Textil", Icon: "checkroom"},
	{ID: "drinkware", Name: "Drinkware", Icon: "local_cafe"},
	{ID: "eco", Name: "Ecológicos", Icon: "eco"},
	{ID: "oficina", Name: "Oficina", Icon: "edit"},
	{ID: "tecnologia", Name: "Tecnología", Icon: "devices"},
}

var defaultSuppliers = []Supplier{
	{ID: AllFilter, Name: "Todos"},
	{ID: "textiles-andinos", Name: "Textiles Andinos"},
	{ID: "importadora-pacifico", Name: "Importadora Pacífico"},
	{ID: "verde-austral", Name: "Verde Austral"},
	{ID: "grafica-central", Name: "Gráfica Central"},
}
