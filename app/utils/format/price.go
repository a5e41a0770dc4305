package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var usd = accounting.Accounting{Symbol: "$", Precision: 2}

// FormatPrice renders a decimal amount as a display price, e.g. "$1,299.00".
func FormatPrice(amount decimal.Decimal) string {
	return usd.FormatMoneyDecimal(amount)
}
