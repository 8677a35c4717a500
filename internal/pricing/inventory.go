package pricing

import (
	"github.com/marketrow/storefront-backend/pkg/db/models"
	"github.com/marketrow/storefront-backend/pkg/enums"
)

// StockInfo is an immutable inventory snapshot. ResolveStock returns a new
// value instead of mutating the catalog record, so pricing never writes
// back into the product it read.
type StockInfo struct {
	Quantity          int
	LowStockThreshold int
	Status            enums.InventoryStatus
	AllowBackorder    bool
	ManageStock       bool
}

// StockInfoFor extracts the inventory snapshot from a catalog product.
func StockInfoFor(p *models.Product) StockInfo {
	return StockInfo{
		Quantity:          p.Quantity,
		LowStockThreshold: p.LowStockThreshold,
		Status:            p.InventoryStatus,
		AllowBackorder:    p.AllowBackorder,
		ManageStock:       p.ManageStock,
	}
}

// ResolveStock recomputes the canonical availability state.
//
// The three terminal statuses are sticky: an explicit out_of_stock or
// preorder is never re-derived from quantity, and backorder stays sticky
// only while stock is truly absent. Everything else derives from the
// quantity against the low-stock threshold.
func ResolveStock(s StockInfo) StockInfo {
	switch s.Status {
	case enums.InventoryStatusOutOfStock:
		s.AllowBackorder = false
		return s
	case enums.InventoryStatusPreorder:
		s.AllowBackorder = true
		return s
	case enums.InventoryStatusBackorder:
		s.AllowBackorder = true
		if s.Quantity <= 0 {
			return s
		}
		// stock came back; fall through to the quantity-derived states
	}

	if s.AllowBackorder && s.Quantity <= 0 {
		s.Status = enums.InventoryStatusBackorder
		return s
	}

	switch {
	case s.Quantity <= 0:
		s.Status = enums.InventoryStatusOutOfStock
	case s.Quantity <= s.LowStockThreshold:
		s.Status = enums.InventoryStatusLowStock
	default:
		s.Status = enums.InventoryStatusInStock
	}
	return s
}

// Unavailable reports whether a purchase of at least one unit would fail.
// Untracked stock (ManageStock false) is always available.
func (s StockInfo) Unavailable() bool {
	if !s.ManageStock {
		return false
	}
	if s.Status == enums.InventoryStatusOutOfStock {
		return true
	}
	return !s.AllowBackorder && s.Quantity <= 0
}
