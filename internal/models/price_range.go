package models

import "github.com/shopspring/decimal"

// PriceRange is one bucket of the fixed price histogram. Max is nil for the
// open-ended final bucket.
type PriceRange struct {
	Label string
	Min   decimal.Decimal
	Max   *decimal.Decimal
}

// PriceRanges is the fixed bucket table, in ascending order. Bounds are
// inclusive on both ends, so a price of exactly 100 belongs to "0-100".
var PriceRanges = buildPriceRanges()

func buildPriceRanges() []PriceRange {
	ranges := make([]PriceRange, 0, 10)
	bounds := [][2]int64{
		{0, 100}, {101, 200}, {201, 300}, {301, 400}, {401, 500},
		{501, 600}, {601, 700}, {701, 800}, {801, 900},
	}
	labels := []string{
		"0-100", "101-200", "201-300", "301-400", "401-500",
		"501-600", "601-700", "701-800", "801-900",
	}
	for i, b := range bounds {
		max := decimal.NewFromInt(b[1])
		ranges = append(ranges, PriceRange{
			Label: labels[i],
			Min:   decimal.NewFromInt(b[0]),
			Max:   &max,
		})
	}
	ranges = append(ranges, PriceRange{
		Label: "901-above",
		Min:   decimal.NewFromInt(901),
	})
	return ranges
}

// PriceRangeHistogram maps each fixed bucket label to a count. Keys sort
// lexicographically in bucket order, so JSON output preserves the table order.
type PriceRangeHistogram map[string]int

// NewPriceRangeHistogram returns a histogram with every bucket present at zero
func NewPriceRangeHistogram() PriceRangeHistogram {
	h := make(PriceRangeHistogram, len(PriceRanges))
	for _, r := range PriceRanges {
		h[r.Label] = 0
	}
	return h
}

// Add increments the single bucket the price falls into. Prices above 900
// land in the open-ended bucket regardless of magnitude.
func (h PriceRangeHistogram) Add(price decimal.Decimal) {
	h[BucketForPrice(price)]++
}

// Total returns the sum of all bucket counts
func (h PriceRangeHistogram) Total() int {
	total := 0
	for _, count := range h {
		total += count
	}
	return total
}

var openBucketFloor = decimal.NewFromInt(900)

// BucketForPrice returns the label of the first range containing the price,
// scanning the table in ascending order. The open-ended bucket takes any
// price above 900.
func BucketForPrice(price decimal.Decimal) string {
	for _, r := range PriceRanges {
		if r.Max == nil {
			if price.GreaterThan(openBucketFloor) {
				return r.Label
			}
			continue
		}
		if price.GreaterThanOrEqual(r.Min) && price.LessThanOrEqual(*r.Max) {
			return r.Label
		}
	}

	// Fractional prices between two closed buckets (100.01, 900.01) belong
	// to the next bucket up.
	for _, r := range PriceRanges {
		if r.Max == nil || price.LessThanOrEqual(*r.Max) {
			return r.Label
		}
	}
	return PriceRanges[len(PriceRanges)-1].Label
}
