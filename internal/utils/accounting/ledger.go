package accounting

import (
	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedQuantity applies the sign of the movement direction to a quantity.
// Inflows are positive, outflows negative.
func SignedQuantity(direction domain.InventoryDirection, quantity decimal.Decimal) decimal.Decimal {
	if direction == domain.Outflow {
		return quantity.Neg()
	}
	return quantity
}

// NextRunningBalance chains a movement onto the previous balance of a stream.
// No floor is applied, an outflow larger than the balance goes negative.
func NextRunningBalance(previous decimal.Decimal, direction domain.InventoryDirection, quantity decimal.Decimal) decimal.Decimal {
	return previous.Add(SignedQuantity(direction, quantity))
}

// RunningBalances replays movements in order from an empty stream and returns
// the balance after each one.
func RunningBalances(movements []domain.InventoryTransaction) []decimal.Decimal {
	balances := make([]decimal.Decimal, len(movements))
	balance := decimal.Zero
	for i, m := range movements {
		balance = NextRunningBalance(balance, m.Type, m.Quantity)
		balances[i] = balance
	}
	return balances
}

// Made tea stock bands.
var (
	OverstockedAbove = decimal.NewFromInt(4000)
	LowStockBelow    = decimal.NewFromInt(800)
)

// StockStatusFor derives the made tea stock band for a grade quantity.
func StockStatusFor(quantity decimal.Decimal) domain.StockStatus {
	switch {
	case quantity.GreaterThan(OverstockedAbove):
		return domain.StockOverstocked
	case quantity.LessThan(LowStockBelow):
		return domain.StockLow
	default:
		return domain.StockNormal
	}
}
