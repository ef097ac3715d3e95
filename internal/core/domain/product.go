package domain

// Category is the closed set of product categories.
type Category string

const (
	CategorySmartphone Category = "Smartphone"
	CategoryLaptop     Category = "Laptop"
	CategoryAppliance  Category = "Appliance"
)

// ParseCategory validates a raw category string against the recognized set.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategorySmartphone, CategoryLaptop, CategoryAppliance:
		return Category(s), nil
	default:
		return "", ErrInvalidCategory
	}
}

// Product models a catalog entry. Model is the unique identifier; Quantity is
// the number of units currently in stock. Details is optional (nil when never
// supplied).
type Product struct {
	Model        string   `json:"model"`
	Category     Category `json:"category"`
	Quantity     int      `json:"quantity"`
	Details      *string  `json:"details"`
	SellingPrice float64  `json:"sellingPrice"`
	ArrivalDate  string   `json:"arrivalDate"`
}
