package pricing

import (
	"booking-checkout/model"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type PricingTestSuite struct {
	suite.Suite
}

func TestPricingTestSuite(t *testing.T) {
	suite.Run(t, new(PricingTestSuite))
}

func (s *PricingTestSuite) TestPriceFromSubtotal() {
	tests := []struct {
		name          string
		subtotal      string
		taxPercent    float64
		expectedTax   string
		expectedTotal string
	}{
		{name: "round hundred", subtotal: "100", taxPercent: 5, expectedTax: "5.00", expectedTotal: "105.00"},
		{name: "discounted subtotal", subtotal: "80", taxPercent: 5, expectedTax: "4.00", expectedTotal: "84.00"},
		{name: "zero subtotal", subtotal: "0", taxPercent: 5, expectedTax: "0.00", expectedTotal: "0.00"},
		{name: "half cent rounds up", subtotal: "10.50", taxPercent: 5, expectedTax: "0.53", expectedTotal: "11.03"},
		{name: "tax rounds before total", subtotal: "99.99", taxPercent: 5, expectedTax: "5.00", expectedTotal: "104.99"},
		{name: "zero tax rate", subtotal: "100", taxPercent: 0, expectedTax: "0.00", expectedTotal: "100.00"},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			tax, total := PriceFromSubtotal(decimal.RequireFromString(tc.subtotal), tc.taxPercent)
			s.Equal(tc.expectedTax, tax.StringFixed(2))
			s.Equal(tc.expectedTotal, total.StringFixed(2))
		})
	}
}

func (s *PricingTestSuite) TestSubtotalFromTotal() {
	tests := []struct {
		name             string
		total            string
		taxPercent       float64
		expectedSubtotal string
		expectedTax      string
	}{
		{name: "clean total", total: "105", taxPercent: 5, expectedSubtotal: "100.00", expectedTax: "5.00"},
		{name: "discounted total", total: "84", taxPercent: 5, expectedSubtotal: "80.00", expectedTax: "4.00"},
		{name: "uneven division", total: "100", taxPercent: 5, expectedSubtotal: "95.24", expectedTax: "4.76"},
		{name: "zero total", total: "0", taxPercent: 5, expectedSubtotal: "0.00", expectedTax: "0.00"},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			subtotal, tax := SubtotalFromTotal(decimal.RequireFromString(tc.total), tc.taxPercent)
			s.Equal(tc.expectedSubtotal, subtotal.StringFixed(2))
			s.Equal(tc.expectedTax, tax.StringFixed(2))
		})
	}
}

func (s *PricingTestSuite) TestComputeTotals() {
	breakdown := func(rows ...model.TicketBreakdownItem) []model.TicketBreakdownItem { return rows }

	tests := []struct {
		name             string
		breakdown        []model.TicketBreakdownItem
		discount         *model.AppliedDiscount
		expectedEntryFee string
		expectedDiscount string
		expectedTax      string
		expectedTotal    string
	}{
		{
			name:             "flat discount",
			breakdown:        breakdown(model.TicketBreakdownItem{Code: "std", Quantity: 1, UnitPrice: 100}),
			discount:         &model.AppliedDiscount{Code: "SAVE20", Type: model.DiscountTypeFlat, Amount: 20},
			expectedEntryFee: "100.00",
			expectedDiscount: "20.00",
			expectedTax:      "4.00",
			expectedTotal:    "84.00",
		},
		{
			name:             "flat discount capped at entry fee",
			breakdown:        breakdown(model.TicketBreakdownItem{Code: "std", Quantity: 1, UnitPrice: 10}),
			discount:         &model.AppliedDiscount{Code: "BIG", Type: model.DiscountTypeFlat, Amount: 50},
			expectedEntryFee: "10.00",
			expectedDiscount: "10.00",
			expectedTax:      "0.00",
			expectedTotal:    "0.00",
		},
		{
			// percentage discounts are accepted but intentionally not
			// priced in; this pins that behavior
			name:             "percentage discount contributes zero",
			breakdown:        breakdown(model.TicketBreakdownItem{Code: "std", Quantity: 1, UnitPrice: 100}),
			discount:         &model.AppliedDiscount{Code: "HALF", Type: model.DiscountTypePercentage, Amount: 50},
			expectedEntryFee: "100.00",
			expectedDiscount: "0.00",
			expectedTax:      "5.00",
			expectedTotal:    "105.00",
		},
		{
			name: "no discount multiple rows",
			breakdown: breakdown(
				model.TicketBreakdownItem{Code: "std", Quantity: 2, UnitPrice: 100},
				model.TicketBreakdownItem{Code: "prm", Quantity: 1, UnitPrice: 200},
			),
			expectedEntryFee: "400.00",
			expectedDiscount: "0.00",
			expectedTax:      "20.00",
			expectedTotal:    "420.00",
		},
		{
			name: "zero quantity rows contribute nothing",
			breakdown: breakdown(
				model.TicketBreakdownItem{Code: "std", Quantity: 0, UnitPrice: 100},
				model.TicketBreakdownItem{Code: "prm", Quantity: 1, UnitPrice: 200},
			),
			expectedEntryFee: "200.00",
			expectedDiscount: "0.00",
			expectedTax:      "10.00",
			expectedTotal:    "210.00",
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			totals := ComputeTotals(tc.breakdown, tc.discount, 5)
			s.Equal(tc.expectedEntryFee, totals.EntryFee.StringFixed(2))
			s.Equal(tc.expectedDiscount, totals.Discount.StringFixed(2))
			s.Equal(tc.expectedTax, totals.Tax.StringFixed(2))
			s.Equal(tc.expectedTotal, totals.Total.StringFixed(2))
		})
	}
}

// Forward then inverse lands back on the original subtotal for
// representative values. This is informational: per-step rounding does
// not guarantee exact inversion at every boundary cent.
func (s *PricingTestSuite) TestInverseRoundTrip() {
	for _, subtotal := range []string{"0.01", "10.50", "80", "100", "123.45", "999.99"} {
		s.Run(subtotal, func() {
			x := decimal.RequireFromString(subtotal)
			_, total := PriceFromSubtotal(x, 5)
			back, _ := SubtotalFromTotal(total, 5)
			s.Equal(x.StringFixed(2), back.StringFixed(2))
		})
	}
}

func (s *PricingTestSuite) TestLines() {
	formatter := message.NewPrinter(language.English)

	withDiscount := ComputeTotals(
		[]model.TicketBreakdownItem{{Code: "std", Quantity: 1, UnitPrice: 100}},
		&model.AppliedDiscount{Code: "SAVE20", Type: model.DiscountTypeFlat, Amount: 20},
		5,
	)
	s.Equal([]string{
		"Entry fee: ₹100.00",
		"Discount: -₹20.00",
		"GST: ₹4.00",
		"Total: ₹84.00",
	}, withDiscount.Lines(formatter))

	withoutDiscount := ComputeTotals(
		[]model.TicketBreakdownItem{{Code: "std", Quantity: 1, UnitPrice: 100}},
		nil,
		5,
	)
	s.Equal([]string{
		"Entry fee: ₹100.00",
		"GST: ₹5.00",
		"Total: ₹105.00",
	}, withoutDiscount.Lines(formatter))
}
