package mapping

import (
	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	"github.com/SscSPs/tea_factory_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		Date:          d.Date,
		Type:          string(d.Type),
		Category:      string(d.Category),
		Description:   d.Description,
		Amount:        d.Amount,
		PaymentType:   string(d.PaymentType),
		Reference:     d.Reference,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Date:          ToLocalDate(m.Date),
		Type:          domain.TransactionType(m.Type),
		Category:      domain.Category(m.Category),
		Description:   m.Description,
		Amount:        m.Amount,
		PaymentType:   domain.PaymentType(m.PaymentType),
		Reference:     m.Reference,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	return mapSlice(ms, ToDomainTransaction)
}

// ToModelInventoryTransaction converts a domain InventoryTransaction to its model
func ToModelInventoryTransaction(d domain.InventoryTransaction) models.InventoryTransaction {
	return models.InventoryTransaction{
		TransactionID:  d.TransactionID,
		Stream:         string(d.Stream),
		Date:           d.Date,
		Time:           d.Time,
		Type:           string(d.Type),
		Quantity:       d.Quantity,
		RunningBalance: d.RunningBalance,
		ItemName:       d.ItemName,
		UnitCost:       d.UnitCost,
		Supplier:       d.Supplier,
		Remarks:        d.Remarks,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInventoryTransaction converts a model InventoryTransaction to its domain form
func ToDomainInventoryTransaction(m models.InventoryTransaction) domain.InventoryTransaction {
	return domain.InventoryTransaction{
		TransactionID:  m.TransactionID,
		Stream:         domain.InventoryStream(m.Stream),
		Date:           ToLocalDate(m.Date),
		Time:           m.Time,
		Type:           domain.InventoryDirection(m.Type),
		Quantity:       m.Quantity,
		RunningBalance: m.RunningBalance,
		ItemName:       m.ItemName,
		UnitCost:       m.UnitCost,
		Supplier:       m.Supplier,
		Remarks:        m.Remarks,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInventoryTransactionSlice converts inventory rows to domain movements
func ToDomainInventoryTransactionSlice(ms []models.InventoryTransaction) []domain.InventoryTransaction {
	return mapSlice(ms, ToDomainInventoryTransaction)
}
