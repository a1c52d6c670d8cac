package feed

import (
	"otc-compare/core/utils"
)

// Row is one flattened JSON object. Nested objects are addressed by dotted
// paths, e.g. "item_info.item_id". Arrays are kept as values.
type Row map[string]any

// Flatten converts a decoded JSON document into rows. A top-level array
// yields one row per object element; a single object yields one row.
// Anything else yields no rows.
func Flatten(doc any) []Row {
	switch v := doc.(type) {
	case []any:
		rows := make([]Row, 0, len(v))
		for _, el := range v {
			obj, ok := el.(map[string]any)
			if !ok {
				continue
			}
			rows = append(rows, flattenObject(obj))
		}
		return rows
	case map[string]any:
		return []Row{flattenObject(v)}
	default:
		return nil
	}
}

func flattenObject(obj map[string]any) Row {
	row := make(Row, len(obj))
	flattenInto(row, "", obj)
	return row
}

func flattenInto(row Row, prefix string, obj map[string]any) {
	for k, v := range obj {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok && len(nested) > 0 {
			flattenInto(row, key, nested)
			continue
		}
		row[key] = v
	}
}

// MapCatalog maps flattened Marketplace rows to catalog entries.
// Rows without an item id are dropped.
func MapCatalog(rows []Row) []CatalogEntry {
	out := make([]CatalogEntry, 0, len(rows))
	for _, r := range rows {
		id, ok := utils.ToInt64(r[ColCatalogItemID])
		if !ok {
			continue
		}
		name, _ := utils.ToString(r[ColCatalogName])
		out = append(out, CatalogEntry{
			ItemID:    id,
			Name:      name,
			GoldPrice: utils.ToFloat(r[ColCatalogPrice]),
		})
	}
	return out
}

// MapListings maps flattened Discord catalog rows to listing references.
// Rows without an item id or listing type are dropped.
func MapListings(rows []Row) []ListingReference {
	out := make([]ListingReference, 0, len(rows))
	for _, r := range rows {
		id, ok := utils.ToInt64(r[ColListingItemID])
		if !ok {
			continue
		}
		lt, ok := utils.ToString(r[ColListingType])
		if !ok || lt == "" {
			continue
		}
		out = append(out, ListingReference{ItemID: id, ListingType: lt})
	}
	return out
}

// MapQuotes maps flattened listing-history rows to quote events.
// Rows without a price or timestamp are dropped.
func MapQuotes(rows []Row) []QuoteEvent {
	out := make([]QuoteEvent, 0, len(rows))
	for _, r := range rows {
		price := utils.ToFloat(r[ColQuoteSBPrice])
		if price == nil {
			continue
		}
		ts, ok := utils.ToInt64(r[ColQuoteTime])
		if !ok {
			continue
		}
		out = append(out, QuoteEvent{SBPrice: *price, Timestamp: ts})
	}
	return out
}
