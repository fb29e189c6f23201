package accounting

import (
	"sort"
	"time"

	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineItem is one named row of the profit and loss statement.
type LineItem string

const (
	LineMadeTeaSales       LineItem = "madeTeaSales"
	LineOtherIncome        LineItem = "otherIncome"
	LineGreenLeafCost      LineItem = "greenLeafCost"
	LineLaborCost          LineItem = "laborCost"
	LineFuelPower          LineItem = "fuelPower"
	LinePackingMaterials   LineItem = "packingMaterials"
	LineFactoryOverheads   LineItem = "factoryOverheads"
	LineMaintenanceRepairs LineItem = "maintenanceRepairs"
	LineTransportHandling  LineItem = "transportHandling"
	LineAdministrative     LineItem = "administrative"
	LineFinancialExpenses  LineItem = "financialExpenses"
)

// lineItems maps each category onto its statement line. Categories absent
// here contribute to no total.
var lineItems = map[domain.Category]LineItem{
	domain.CategoryMadeTeaSales:          LineMadeTeaSales,
	domain.CategoryOtherIncome:           LineOtherIncome,
	domain.CategoryGreenLeafCost:         LineGreenLeafCost,
	domain.CategoryLaborCost:             LineLaborCost,
	domain.CategoryFuelPower:             LineFuelPower,
	domain.CategoryPackingMaterials:      LinePackingMaterials,
	domain.CategoryFactoryOverheads:      LineFactoryOverheads,
	domain.CategoryMaintenanceRepairs:    LineMaintenanceRepairs,
	domain.CategoryTransportHandling:     LineTransportHandling,
	domain.CategoryAdministrativeExpense: LineAdministrative,
	domain.CategoryFinancialExpenses:     LineFinancialExpenses,
}

// LineItemFor returns the statement line a category feeds, matched exactly.
func LineItemFor(category domain.Category) (LineItem, bool) {
	line, ok := lineItems[category]
	return line, ok
}

// BuildProfitLoss maps the transactions of [from, to] onto the fixed statement.
// The caller is responsible for passing only transactions inside the range.
func BuildProfitLoss(txns []domain.Transaction, from, to time.Time) domain.ProfitLossStatement {
	lines := make(map[LineItem]decimal.Decimal, len(lineItems))
	unmapped := map[domain.Category]*domain.UnmappedCategory{}

	for _, txn := range txns {
		line, ok := LineItemFor(txn.Category)
		if !ok {
			u, seen := unmapped[txn.Category]
			if !seen {
				u = &domain.UnmappedCategory{Category: txn.Category, Total: decimal.Zero}
				unmapped[txn.Category] = u
			}
			u.Total = u.Total.Add(txn.Amount)
			u.Count++
			continue
		}
		lines[line] = lines[line].Add(txn.Amount)
	}

	pl := domain.ProfitLossStatement{
		DateFrom:           from,
		DateTo:             to,
		MadeTeaSales:       lines[LineMadeTeaSales],
		OtherIncome:        lines[LineOtherIncome],
		GreenLeafCost:      lines[LineGreenLeafCost],
		LaborCost:          lines[LineLaborCost],
		FuelPower:          lines[LineFuelPower],
		PackingMaterials:   lines[LinePackingMaterials],
		FactoryOverheads:   lines[LineFactoryOverheads],
		MaintenanceRepairs: lines[LineMaintenanceRepairs],
		TransportHandling:  lines[LineTransportHandling],
		Administrative:     lines[LineAdministrative],
		FinancialExpenses:  lines[LineFinancialExpenses],
	}

	pl.TotalIncome = pl.MadeTeaSales.Add(pl.OtherIncome)
	pl.TotalCostOfProduction = pl.GreenLeafCost.Add(pl.LaborCost).Add(pl.FuelPower).Add(pl.PackingMaterials)
	pl.GrossProfit = pl.TotalIncome.Sub(pl.TotalCostOfProduction)
	pl.GrossProfitMargin = Margin(pl.GrossProfit, pl.TotalIncome)
	pl.TotalOperatingExpenses = pl.FactoryOverheads.Add(pl.MaintenanceRepairs).Add(pl.TransportHandling).Add(pl.Administrative)
	pl.OperatingProfit = pl.GrossProfit.Sub(pl.TotalOperatingExpenses)
	pl.OperatingProfitMargin = Margin(pl.OperatingProfit, pl.TotalIncome)
	pl.NetProfit = pl.OperatingProfit.Sub(pl.FinancialExpenses)
	pl.NetProfitMargin = Margin(pl.NetProfit, pl.TotalIncome)

	pl.UnmappedCategories = make([]domain.UnmappedCategory, 0, len(unmapped))
	for _, u := range unmapped {
		pl.UnmappedCategories = append(pl.UnmappedCategories, *u)
	}
	sort.Slice(pl.UnmappedCategories, func(i, j int) bool {
		return pl.UnmappedCategories[i].Category < pl.UnmappedCategories[j].Category
	})

	return pl
}

// Margin returns part as a percentage of total rounded to two places, or zero
// when total is not positive.
func Margin(part, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}
	return part.Div(total).Mul(hundred).Round(2)
}
