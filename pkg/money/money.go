package money

import "github.com/leekchan/accounting"

var acc = accounting.Accounting{
  Symbol:         "руб.",
  Precision:      0,
  Thousand:       " ",
  Decimal:        ".",
  Format:         "%v %s",
  FormatNegative: "-%v %s",
  FormatZero:     "%v %s",
}

func String(value int64) string {
  return acc.FormatMoney(value)
}
