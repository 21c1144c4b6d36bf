package pdf

import (
	"strings"

	"tradebill/internal/domain/entities"
)

// Labor-ish wording routes a line item into the SERVICES section; everything
// else is MATERIALS. Matching is substring based, so "Overtime callout" and
// "Service call" both count as services.
var serviceKeywords = []string{"labor", "hour", "service", "time"}

func isServiceItem(description string) bool {
	d := strings.ToLower(description)
	for _, kw := range serviceKeywords {
		if strings.Contains(d, kw) {
			return true
		}
	}
	return false
}

// splitLineItems partitions items into services and materials, preserving
// input order within each section. Items with an empty description are
// materials.
func splitLineItems(items []entities.LineItem) (services, materials []entities.LineItem) {
	for _, it := range items {
		if isServiceItem(it.Description) {
			services = append(services, it)
		} else {
			materials = append(materials, it)
		}
	}
	return services, materials
}

func itemAmount(it entities.LineItem) float64 {
	return safeFloat(it.Quantity.Float()) * safeFloat(it.Rate.Float())
}

func sectionTotal(items []entities.LineItem) float64 {
	total := 0.0
	for _, it := range items {
		total += itemAmount(it)
	}
	return total
}

// billSummary is everything the money portions of the document need:
// sectioned items, per-section totals, and the reconciled tax/total pair.
type billSummary struct {
	Services       []entities.LineItem
	Materials      []entities.LineItem
	ServicesTotal  float64
	MaterialsTotal float64
	Subtotal       float64
	Tax            float64
	Total          float64
}

// reconcileTolerance is the float slack under which a stored total is
// considered equal to the computed subtotal.
const reconcileTolerance = 1e-6

// flatTaxRate applies when the stored total carries no tax information.
const flatTaxRate = 0.10

// summarize classifies the invoice's line items and reconciles its money.
//
// When the invoice carries a positive total that differs from the computed
// subtotal, the difference is presented as tax and the stored total wins.
// A stored total below the subtotal therefore yields a negative tax, which
// the totals block suppresses while still honoring the stored total.
// Otherwise a flat 10% tax is applied on top of the subtotal.
func summarize(inv entities.Invoice) billSummary {
	services, materials := splitLineItems(inv.LineItems)

	s := billSummary{
		Services:       services,
		Materials:      materials,
		ServicesTotal:  sectionTotal(services),
		MaterialsTotal: sectionTotal(materials),
	}
	s.Subtotal = s.ServicesTotal + s.MaterialsTotal

	stored := safeFloat(inv.Total.Float())
	if stored > 0 && diff(stored, s.Subtotal) > reconcileTolerance {
		s.Tax = stored - s.Subtotal
		s.Total = stored
	} else {
		s.Tax = s.Subtotal * flatTaxRate
		s.Total = s.Subtotal + s.Tax
	}
	return s
}

func diff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
