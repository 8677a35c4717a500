package pricing

import (
	"testing"

	"github.com/marketrow/storefront-backend/pkg/enums"
)

func TestResolveStockDerivesFromQuantity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   StockInfo
		want enums.InventoryStatus
	}{
		{
			name: "above threshold is in stock",
			in:   StockInfo{Quantity: 10, LowStockThreshold: 3, Status: enums.InventoryStatusInStock, ManageStock: true},
			want: enums.InventoryStatusInStock,
		},
		{
			name: "at threshold is low stock",
			in:   StockInfo{Quantity: 3, LowStockThreshold: 3, Status: enums.InventoryStatusInStock, ManageStock: true},
			want: enums.InventoryStatusLowStock,
		},
		{
			name: "zero without backorder is out of stock",
			in:   StockInfo{Quantity: 0, LowStockThreshold: 3, Status: enums.InventoryStatusInStock, ManageStock: true},
			want: enums.InventoryStatusOutOfStock,
		},
		{
			name: "zero with backorder becomes backorder",
			in:   StockInfo{Quantity: 0, Status: enums.InventoryStatusInStock, AllowBackorder: true, ManageStock: true},
			want: enums.InventoryStatusBackorder,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveStock(tc.in)
			if got.Status != tc.want {
				t.Fatalf("status = %s, want %s", got.Status, tc.want)
			}
		})
	}
}

func TestResolveStockStickyStates(t *testing.T) {
	t.Parallel()

	out := ResolveStock(StockInfo{Quantity: 50, Status: enums.InventoryStatusOutOfStock, AllowBackorder: true, ManageStock: true})
	if out.Status != enums.InventoryStatusOutOfStock {
		t.Fatalf("sticky out_of_stock re-derived to %s", out.Status)
	}
	if out.AllowBackorder {
		t.Fatal("out_of_stock must force backorder off")
	}

	pre := ResolveStock(StockInfo{Quantity: 0, Status: enums.InventoryStatusPreorder, ManageStock: true})
	if pre.Status != enums.InventoryStatusPreorder || !pre.AllowBackorder {
		t.Fatalf("preorder resolved to %s (backorder %v)", pre.Status, pre.AllowBackorder)
	}

	back := ResolveStock(StockInfo{Quantity: 0, Status: enums.InventoryStatusBackorder, ManageStock: true})
	if back.Status != enums.InventoryStatusBackorder || !back.AllowBackorder {
		t.Fatalf("empty backorder resolved to %s (backorder %v)", back.Status, back.AllowBackorder)
	}

	// Restocked backordered products re-derive from quantity.
	restocked := ResolveStock(StockInfo{Quantity: 8, LowStockThreshold: 3, Status: enums.InventoryStatusBackorder, ManageStock: true})
	if restocked.Status != enums.InventoryStatusInStock {
		t.Fatalf("restocked backorder resolved to %s", restocked.Status)
	}
}

func TestUnavailable(t *testing.T) {
	t.Parallel()

	untracked := StockInfo{Quantity: 0, Status: enums.InventoryStatusOutOfStock, ManageStock: false}
	if untracked.Unavailable() {
		t.Fatal("untracked stock must always be available")
	}

	oos := ResolveStock(StockInfo{Quantity: 0, Status: enums.InventoryStatusInStock, ManageStock: true})
	if !oos.Unavailable() {
		t.Fatal("tracked zero stock without backorder must be unavailable")
	}

	backorder := ResolveStock(StockInfo{Quantity: 0, Status: enums.InventoryStatusInStock, AllowBackorder: true, ManageStock: true})
	if backorder.Unavailable() {
		t.Fatal("backorderable products remain purchasable at zero stock")
	}
}
