package dto

import (
	"github.com/shopspring/decimal"
)

// CreateGreenLeafIntakeRequest records a weighed green leaf delivery.
type CreateGreenLeafIntakeRequest struct {
	Date         string           `json:"date" binding:"required"`
	SupplierName string           `json:"supplierName" binding:"required"`
	Route        string           `json:"route"`
	GrossWeight  decimal.Decimal  `json:"grossWeight"`
	TareWeight   decimal.Decimal  `json:"tareWeight"`
	RatePerKg    *decimal.Decimal `json:"ratePerKg"`
	Remarks      string           `json:"remarks"`
}

// GradeOutputRequest is the made tea produced for one grade.
type GradeOutputRequest struct {
	Grade    string          `json:"grade" binding:"required"`
	Quantity decimal.Decimal `json:"quantity"`
}

// CreateProductionBatchRequest records a production batch. Yield is computed
// by the service and each grade output is added to made tea stock.
type CreateProductionBatchRequest struct {
	BatchNumber     string               `json:"batchNumber" binding:"required"`
	Date            string               `json:"date" binding:"required"`
	GreenLeafUsed   decimal.Decimal      `json:"greenLeafUsed"`
	MadeTeaProduced decimal.Decimal      `json:"madeTeaProduced"`
	GradeOutputs    []GradeOutputRequest `json:"gradeOutputs" binding:"dive"`
	Remarks         string               `json:"remarks"`
}

// CreateDispatchRequest records a made tea shipment for one grade.
type CreateDispatchRequest struct {
	Date           string           `json:"date" binding:"required"`
	DispatchNumber string           `json:"dispatchNumber" binding:"required"`
	Grade          string           `json:"grade" binding:"required"`
	Quantity       decimal.Decimal  `json:"quantity"`
	Destination    string           `json:"destination" binding:"required"`
	VehicleNumber  string           `json:"vehicleNumber"`
	UnitPrice      *decimal.Decimal `json:"unitPrice"`
	Remarks        string           `json:"remarks"`
}

// ListMadeTeaTransactionsParams defines query parameters for made tea movements.
type ListMadeTeaTransactionsParams struct {
	DateFrom string `form:"dateFrom"`
	DateTo   string `form:"dateTo"`
	Grade    string `form:"grade"`
}
