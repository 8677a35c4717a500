package enums

// Descriptive product tags snapshotted onto order lines. ProductTagComingSoon
// is special: it suppresses every other tag and blocks ordering entirely.
const (
	ProductTagComingSoon  = "coming soon"
	ProductTagOnSale      = "on sale"
	ProductTagBackInStock = "back in stock"
	ProductTagNewArrival  = "new arrival"
	ProductTagInStock     = "in_stock"
	ProductTagOutOfStock  = "out_of_stock"
)
