package dto

import (
	"github.com/shopspring/decimal"
)

// CreateInventoryTransactionRequest records a firewood or packing materials movement.
// The running balance is computed by the service.
type CreateInventoryTransactionRequest struct {
	Date     string           `json:"date" binding:"required"`
	Time     string           `json:"time" binding:"required"`
	Type     string           `json:"type" binding:"required"`
	Quantity decimal.Decimal  `json:"quantity"`
	ItemName string           `json:"itemName"`
	UnitCost *decimal.Decimal `json:"unitCost"`
	Supplier string           `json:"supplier"`
	Remarks  string           `json:"remarks"`
}
