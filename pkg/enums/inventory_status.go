package enums

// InventoryStatus is the canonical availability state of a product.
//
// in_stock, low_stock and out_of_stock are derived from the quantity on hand;
// out_of_stock, preorder and backorder can also be set explicitly, in which
// case they are sticky and survive quantity changes (backorder only while
// stock is truly absent).
type InventoryStatus string

const (
	InventoryStatusInStock    InventoryStatus = "in_stock"
	InventoryStatusLowStock   InventoryStatus = "low_stock"
	InventoryStatusOutOfStock InventoryStatus = "out_of_stock"
	InventoryStatusBackorder  InventoryStatus = "backorder"
	InventoryStatusPreorder   InventoryStatus = "preorder"
)

var validInventoryStatuses = []InventoryStatus{
	InventoryStatusInStock,
	InventoryStatusLowStock,
	InventoryStatusOutOfStock,
	InventoryStatusBackorder,
	InventoryStatusPreorder,
}

// String implements fmt.Stringer.
func (s InventoryStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known InventoryStatus.
func (s InventoryStatus) IsValid() bool {
	for _, candidate := range validInventoryStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}
