package concerns

import (
	"github.com/shopspring/decimal"
)

type PrecisionValidator struct {
}

func (p PrecisionValidator) LessThanOrEqTo(value decimal.Decimal, precision int32) bool {
	return value.Equal(value.Round(precision))
}
