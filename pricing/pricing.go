package pricing

import (
	"booking-checkout/model"

	"github.com/shopspring/decimal"
	"golang.org/x/text/message"
)

// Every intermediate currency amount is rounded to two decimal places
// before it is used further, so each displayed line is locally exact.
// The price paid for that is that PriceFromSubtotal and
// SubtotalFromTotal are not guaranteed to be exact inverses at boundary
// cents.

// Round2 rounds half away from zero to two decimal places. Amounts in
// this domain cannot go negative (the discount is capped at the entry
// fee), so this is round-half-up.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

var one = decimal.NewFromInt(1)
var hundred = decimal.NewFromInt(100)

// PriceFromSubtotal computes the tax line and payable total for an
// already-discounted subtotal.
func PriceFromSubtotal(subtotal decimal.Decimal, taxPercent float64) (tax, total decimal.Decimal) {
	rate := decimal.NewFromFloat(taxPercent).Div(hundred)
	tax = Round2(subtotal.Mul(rate))
	total = Round2(subtotal.Add(tax))
	return tax, total
}

// SubtotalFromTotal backs a subtotal and tax line out of a
// gateway-confirmed total. The result is display-only and must never be
// resubmitted as an authoritative price.
func SubtotalFromTotal(total decimal.Decimal, taxPercent float64) (subtotal, tax decimal.Decimal) {
	divisor := one.Add(decimal.NewFromFloat(taxPercent).Div(hundred))
	subtotal = Round2(total.Div(divisor))
	tax = Round2(total.Sub(subtotal))
	return subtotal, tax
}

type Totals struct {
	EntryFee decimal.Decimal
	Discount decimal.Decimal
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals runs the full chain: entry fee, discount, taxed total.
//
// A percentage discount contributes zero to the total on purpose. The
// data model accepts it, the engine does not price it, and that stays
// until product says otherwise.
func ComputeTotals(breakdown []model.TicketBreakdownItem, discount *model.AppliedDiscount, taxPercent float64) Totals {
	entryFee := decimal.Zero
	for _, item := range breakdown {
		if item.Quantity <= 0 {
			continue
		}
		entryFee = entryFee.Add(decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	entryFee = Round2(entryFee)

	discountAmount := decimal.Zero
	if discount != nil && discount.Type == model.DiscountTypeFlat {
		discountAmount = Round2(decimal.NewFromFloat(discount.Amount))
		if discountAmount.GreaterThan(entryFee) {
			discountAmount = entryFee
		}
	}

	subtotal := entryFee.Sub(discountAmount)
	tax, total := PriceFromSubtotal(subtotal, taxPercent)

	return Totals{
		EntryFee: entryFee,
		Discount: discountAmount,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    total,
	}
}

func (t Totals) Breakdown() model.PriceBreakdown {
	return model.PriceBreakdown{
		EntryFee: t.EntryFee.InexactFloat64(),
		Discount: t.Discount.InexactFloat64(),
		Tax:      t.Tax.InexactFloat64(),
		Total:    t.Total.InexactFloat64(),
	}
}

// Lines renders the display breakdown in order: entry fee, discount
// (only when it reduced the price), tax, total.
func (t Totals) Lines(formatter *message.Printer) []string {
	lines := []string{
		formatter.Sprintf("Entry fee: ₹%.2f", t.EntryFee.InexactFloat64()),
	}

	if t.Discount.IsPositive() {
		lines = append(lines, formatter.Sprintf("Discount: -₹%.2f", t.Discount.InexactFloat64()))
	}

	lines = append(lines,
		formatter.Sprintf("GST: ₹%.2f", t.Tax.InexactFloat64()),
		formatter.Sprintf("Total: ₹%.2f", t.Total.InexactFloat64()),
	)

	return lines
}
