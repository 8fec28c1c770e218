package pricing

import (
	"math"
	"strconv"
	"strings"

	"rrportal/internal/domain/entities"
)

// GSTRate is the fixed Goods and Services Tax surcharge applied to subtotals.
const GSTRate = 0.18

// Breakdown is the derived total for one quotation group. Never persisted;
// recomputed from line items on every use.

type Breakdown struct {
	Subtotal   float64 `json:"subtotal"`
	GST        float64 `json:"gst"`
	GrandTotal float64 `json:"grand_total"`
}

// GroupTotal computes subtotal/GST/grand total over the items of one group.
// Amounts are GST-exclusive. Pure and idempotent.
func GroupTotal(items []entities.Quotation) Breakdown {
	var subtotal float64
	for _, it := range items {
		subtotal += it.Amount
	}
	return Breakdown{
		Subtotal:   subtotal,
		GST:        math.Round(subtotal * GSTRate),
		GrandTotal: math.Round(subtotal * (1 + GSTRate)),
	}
}

// ParseAmount converts the loosely-typed amount values that reach the
// ingestion boundary (number, numeric string, empty) into a float.
// Anything malformed counts as 0 so pricing never fails on bad input.
func ParseAmount(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Strategy identifies which pricing path produced a guideline breakdown, so
// callers and tests can assert the path instead of inferring it from numbers.

type Strategy string

const (
	// StrategyListedPrice: every guideline resolved to its original listed
	// catalog price. Preferred because it matches the figures quoted to the
	// customer, even when the listed prices do not sum exactly to the stored
	// amount.
	StrategyListedPrice Strategy = "listed_price"
	// StrategyEvenSplit: at least one catalog lookup failed; the stored
	// amount is split evenly across guidelines, then across samples.
	StrategyEvenSplit Strategy = "even_split"
	// StrategyStudySplit: Microbiology & Virology items divide the amount
	// evenly across selected studies. The resulting unit price is a
	// per-study total across all samples, not a per-sample price; kept as
	// observed pending product-owner clarification.
	StrategyStudySplit Strategy = "study_split"
	// StrategySyntheticLine: no guidelines selected; a single line is
	// synthesized from the study type itself.
	StrategySyntheticLine Strategy = "synthetic_line"
)

// GuidelineLine is one row of the PDF line-item table.

type GuidelineLine struct {
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unitPrice"`
}

// ItemBreakdown expands one line item into its per-guideline price rows.
// The sum of UnitPrice×Qty approximates the stored amount; exact equality is
// only guaranteed on the split strategies.
func ItemBreakdown(q entities.Quotation) ([]GuidelineLine, Strategy) {
	samples := q.NumberOfSamples
	if samples < 1 {
		samples = 1
	}

	if q.StudyType == entities.StudyTypeMicrobiology {
		studies := q.Studies
		if len(studies) == 0 {
			studies = []string{q.StudyType}
		}
		unit := math.Round(q.Amount / float64(len(studies)))
		lines := make([]GuidelineLine, len(studies))
		for i, name := range studies {
			lines[i] = GuidelineLine{Name: name, Qty: samples, UnitPrice: unit}
		}
		return lines, StrategyStudySplit
	}

	if len(q.Guidelines) == 0 {
		return []GuidelineLine{{
			Name:      q.StudyType,
			Qty:       samples,
			UnitPrice: math.Round(q.Amount / float64(samples)),
		}}, StrategySyntheticLine
	}

	listed := make([]GuidelineLine, 0, len(q.Guidelines))
	for _, name := range q.Guidelines {
		price, ok := ListedPrice(q.StudyType, q.Category, name)
		if !ok {
			listed = nil
			break
		}
		listed = append(listed, GuidelineLine{Name: name, Qty: samples, UnitPrice: price})
	}
	if listed != nil {
		return listed, StrategyListedPrice
	}

	perGuideline := math.Round(q.Amount / float64(len(q.Guidelines)))
	unit := math.Round(perGuideline / float64(samples))
	lines := make([]GuidelineLine, len(q.Guidelines))
	for i, name := range q.Guidelines {
		lines[i] = GuidelineLine{Name: name, Qty: samples, UnitPrice: unit}
	}
	return lines, StrategyEvenSplit
}
