package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GreenLeafIntake is a row of green_leaf_intakes.
type GreenLeafIntake struct {
	IntakeID     string           `db:"intake_id"`
	Date         time.Time        `db:"date"`
	SupplierName string           `db:"supplier_name"`
	Route        string           `db:"route"`
	GrossWeight  decimal.Decimal  `db:"gross_weight"`
	TareWeight   decimal.Decimal  `db:"tare_weight"`
	NetWeight    decimal.Decimal  `db:"net_weight"`
	RatePerKg    *decimal.Decimal `db:"rate_per_kg"` // Nullable
	Remarks      string           `db:"remarks"`
	AuditFields
}

// ProductionBatch is a row of production_batches. Grade outputs live in
// production_grade_outputs.
type ProductionBatch struct {
	BatchID         string          `db:"batch_id"`
	BatchNumber     string          `db:"batch_number"` // Unique
	Date            time.Time       `db:"date"`
	GreenLeafUsed   decimal.Decimal `db:"green_leaf_used"`
	MadeTeaProduced decimal.Decimal `db:"made_tea_produced"`
	YieldPercentage decimal.Decimal `db:"yield_percentage"`
	Remarks         string          `db:"remarks"`
	AuditFields
}

// GradeOutput is a row of production_grade_outputs.
type GradeOutput struct {
	BatchID  string          `db:"batch_id"`
	Grade    string          `db:"grade"`
	Quantity decimal.Decimal `db:"quantity"`
}
