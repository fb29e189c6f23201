package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GreenLeafIntake is a weighed delivery of green leaf. NetWeight is fixed at creation.
type GreenLeafIntake struct {
	IntakeID     string           `json:"intakeID"`
	Date         time.Time        `json:"date"`
	SupplierName string           `json:"supplierName"`
	Route        string           `json:"route"`
	GrossWeight  decimal.Decimal  `json:"grossWeight"`
	TareWeight   decimal.Decimal  `json:"tareWeight"`
	NetWeight    decimal.Decimal  `json:"netWeight"`
	RatePerKg    *decimal.Decimal `json:"ratePerKg,omitempty"`
	Remarks      string           `json:"remarks"`
	AuditFields
}

// GradeOutput is the made tea yielded by a batch for one grade.
type GradeOutput struct {
	Grade    Grade           `json:"grade"`
	Quantity decimal.Decimal `json:"quantity"`
}

// ProductionBatch converts green leaf into made tea.
type ProductionBatch struct {
	BatchID         string          `json:"batchID"`
	BatchNumber     string          `json:"batchNumber"`
	Date            time.Time       `json:"date"`
	GreenLeafUsed   decimal.Decimal `json:"greenLeafUsed"`
	MadeTeaProduced decimal.Decimal `json:"madeTeaProduced"`
	YieldPercentage decimal.Decimal `json:"yieldPercentage"`
	GradeOutputs    []GradeOutput   `json:"gradeOutputs,omitempty"`
	Remarks         string          `json:"remarks"`
	AuditFields
}
