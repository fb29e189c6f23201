package domain

import (
	"strings"
	"time"

	"github.com/SscSPs/tea_factory_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// InventoryStream names an independently balanced inventory ledger.
type InventoryStream string

const (
	FirewoodStream         InventoryStream = "FIREWOOD"
	PackingMaterialsStream InventoryStream = "PACKING_MATERIALS"
)

// InventoryDirection is whether stock entered or left the stream.
type InventoryDirection string

const (
	Inflow  InventoryDirection = "INFLOW"
	Outflow InventoryDirection = "OUTFLOW"
)

// ParseInventoryDirection validates an inventory transaction type.
func ParseInventoryDirection(s string) (InventoryDirection, error) {
	switch d := InventoryDirection(strings.ToUpper(strings.TrimSpace(s))); d {
	case Inflow, Outflow:
		return d, nil
	}
	return "", apperrors.NewInvalidInput("type", "unknown inventory transaction type %q", s)
}

// ParseTimeOfDay validates an HH:MM wall clock time and returns it normalised.
func ParseTimeOfDay(s string) (string, error) {
	t, err := time.Parse(TimeOfDayLayout, strings.TrimSpace(s))
	if err != nil {
		return "", apperrors.NewInvalidInput("time", "expected HH:MM, got %q", s)
	}
	return t.Format(TimeOfDayLayout), nil
}

// InventoryTransaction is one movement in a firewood or packing materials stream.
// RunningBalance is the stream balance after this movement.
type InventoryTransaction struct {
	TransactionID  string             `json:"transactionID"`
	Stream         InventoryStream    `json:"stream"`
	Date           time.Time          `json:"date"`
	Time           string             `json:"time"` // HH:MM
	Type           InventoryDirection `json:"type"`
	Quantity       decimal.Decimal    `json:"quantity"`
	RunningBalance decimal.Decimal    `json:"runningBalance"`
	ItemName       string             `json:"itemName"`
	UnitCost       *decimal.Decimal   `json:"unitCost,omitempty"`
	Supplier       string             `json:"supplier"`
	Remarks        string             `json:"remarks"`
	AuditFields
}
