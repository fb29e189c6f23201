package mapping

import (
	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	"github.com/SscSPs/tea_factory_app/internal/models"
)

// ToModelGreenLeafIntake converts a domain GreenLeafIntake to its model
func ToModelGreenLeafIntake(d domain.GreenLeafIntake) models.GreenLeafIntake {
	return models.GreenLeafIntake{
		IntakeID:     d.IntakeID,
		Date:         d.Date,
		SupplierName: d.SupplierName,
		Route:        d.Route,
		GrossWeight:  d.GrossWeight,
		TareWeight:   d.TareWeight,
		NetWeight:    d.NetWeight,
		RatePerKg:    d.RatePerKg,
		Remarks:      d.Remarks,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainGreenLeafIntake converts a model GreenLeafIntake to its domain form
func ToDomainGreenLeafIntake(m models.GreenLeafIntake) domain.GreenLeafIntake {
	return domain.GreenLeafIntake{
		IntakeID:     m.IntakeID,
		Date:         ToLocalDate(m.Date),
		SupplierName: m.SupplierName,
		Route:        m.Route,
		GrossWeight:  m.GrossWeight,
		TareWeight:   m.TareWeight,
		NetWeight:    m.NetWeight,
		RatePerKg:    m.RatePerKg,
		Remarks:      m.Remarks,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainGreenLeafIntakeSlice converts intake rows to domain intakes
func ToDomainGreenLeafIntakeSlice(ms []models.GreenLeafIntake) []domain.GreenLeafIntake {
	return mapSlice(ms, ToDomainGreenLeafIntake)
}

// ToModelProductionBatch splits a domain batch into its batch row and grade output rows
func ToModelProductionBatch(d domain.ProductionBatch) (models.ProductionBatch, []models.GradeOutput) {
	outputs := make([]models.GradeOutput, len(d.GradeOutputs))
	for i, o := range d.GradeOutputs {
		outputs[i] = models.GradeOutput{BatchID: d.BatchID, Grade: string(o.Grade), Quantity: o.Quantity}
	}
	return models.ProductionBatch{
		BatchID:         d.BatchID,
		BatchNumber:     d.BatchNumber,
		Date:            d.Date,
		GreenLeafUsed:   d.GreenLeafUsed,
		MadeTeaProduced: d.MadeTeaProduced,
		YieldPercentage: d.YieldPercentage,
		Remarks:         d.Remarks,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}, outputs
}

// ToDomainProductionBatch joins a batch row with its grade output rows
func ToDomainProductionBatch(m models.ProductionBatch, outputs []models.GradeOutput) domain.ProductionBatch {
	var grades []domain.GradeOutput
	for _, o := range outputs {
		grades = append(grades, domain.GradeOutput{Grade: domain.Grade(o.Grade), Quantity: o.Quantity})
	}
	return domain.ProductionBatch{
		BatchID:         m.BatchID,
		BatchNumber:     m.BatchNumber,
		Date:            ToLocalDate(m.Date),
		GreenLeafUsed:   m.GreenLeafUsed,
		MadeTeaProduced: m.MadeTeaProduced,
		YieldPercentage: m.YieldPercentage,
		GradeOutputs:    grades,
		Remarks:         m.Remarks,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMadeTeaStock converts a stock row. Status is derived later, never stored.
func ToDomainMadeTeaStock(m models.MadeTeaStock) domain.MadeTeaStock {
	return domain.MadeTeaStock{
		Grade:         domain.Grade(m.Grade),
		Quantity:      m.Quantity,
		LastUpdatedAt: m.LastUpdatedAt,
	}
}

// ToDomainMadeTeaStockSlice converts stock rows to domain stock
func ToDomainMadeTeaStockSlice(ms []models.MadeTeaStock) []domain.MadeTeaStock {
	return mapSlice(ms, ToDomainMadeTeaStock)
}

// ToModelMadeTeaTransaction converts a domain movement to its model
func ToModelMadeTeaTransaction(d domain.MadeTeaTransaction) models.MadeTeaTransaction {
	return models.MadeTeaTransaction{
		TransactionID: d.TransactionID,
		Date:          d.Date,
		Grade:         string(d.Grade),
		Type:          string(d.Type),
		Direction:     string(d.Direction),
		Quantity:      d.Quantity,
		Balance:       d.Balance,
		Reference:     d.Reference,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMadeTeaTransaction converts a movement row to its domain form
func ToDomainMadeTeaTransaction(m models.MadeTeaTransaction) domain.MadeTeaTransaction {
	return domain.MadeTeaTransaction{
		TransactionID: m.TransactionID,
		Date:          ToLocalDate(m.Date),
		Grade:         domain.Grade(m.Grade),
		Type:          domain.MadeTeaTxnType(m.Type),
		Direction:     domain.InventoryDirection(m.Direction),
		Quantity:      m.Quantity,
		Balance:       m.Balance,
		Reference:     m.Reference,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMadeTeaTransactionSlice converts movement rows to domain movements
func ToDomainMadeTeaTransactionSlice(ms []models.MadeTeaTransaction) []domain.MadeTeaTransaction {
	return mapSlice(ms, ToDomainMadeTeaTransaction)
}

// ToModelDispatchRecord converts a domain DispatchRecord to its model
func ToModelDispatchRecord(d domain.DispatchRecord) models.DispatchRecord {
	return models.DispatchRecord{
		DispatchID:     d.DispatchID,
		DispatchNumber: d.DispatchNumber,
		Date:           d.Date,
		Grade:          string(d.Grade),
		Quantity:       d.Quantity,
		Destination:    d.Destination,
		VehicleNumber:  d.VehicleNumber,
		UnitPrice:      d.UnitPrice,
		Remarks:        d.Remarks,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDispatchRecord converts a dispatch row to its domain form
func ToDomainDispatchRecord(m models.DispatchRecord) domain.DispatchRecord {
	return domain.DispatchRecord{
		DispatchID:     m.DispatchID,
		DispatchNumber: m.DispatchNumber,
		Date:           ToLocalDate(m.Date),
		Grade:          domain.Grade(m.Grade),
		Quantity:       m.Quantity,
		Destination:    m.Destination,
		VehicleNumber:  m.VehicleNumber,
		UnitPrice:      m.UnitPrice,
		Remarks:        m.Remarks,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDispatchRecordSlice converts dispatch rows to domain dispatches
func ToDomainDispatchRecordSlice(ms []models.DispatchRecord) []domain.DispatchRecord {
	return mapSlice(ms, ToDomainDispatchRecord)
}
