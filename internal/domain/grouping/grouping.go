package grouping

import "rrportal/internal/domain/entities"

// Group is a non-empty ordered set of line items sharing a grouping key,
// treated as one unit for display, deletion, download and payment.

type Group struct {
	Key   string
	Items []entities.Quotation
}

// KeyFor resolves the grouping key for one item: session id, then quotation
// number, then creation date; first non-empty wins.
func KeyFor(q entities.Quotation) string {
	if q.SessionID != "" {
		return q.SessionID
	}
	if q.QuotationNo != "" {
		return q.QuotationNo
	}
	return q.CreatedOn
}

// GroupBy partitions items in a single pass, preserving first-seen group
// order and original item order within each group.
func GroupBy(items []entities.Quotation) []Group {
	index := make(map[string]int, len(items))
	groups := make([]Group, 0, len(items))
	for _, it := range items {
		key := KeyFor(it)
		if pos, ok := index[key]; ok {
			groups[pos].Items = append(groups[pos].Items, it)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, Group{Key: key, Items: []entities.Quotation{it}})
	}
	return groups
}

// PaymentReference is the server-side identifier for mutating operations on
// the group. It is the first item's quotation number with the display prefix
// stripped, never the grouping key itself, which may be a session id or a
// creation date.
func (g Group) PaymentReference() string {
	if len(g.Items) == 0 {
		return ""
	}
	return entities.NormalizeQuotationNo(g.Items[0].QuotationNo)
}
