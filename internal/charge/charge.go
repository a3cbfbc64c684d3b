package charge

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/stakeledger/internal/domain"
)

const moneyPlaces = 2

var hundred = decimal.NewFromInt(100)

type Result struct {
	Gross  decimal.Decimal
	Charge decimal.Decimal
	Net    decimal.Decimal
}

// Calculate splits gross into charge and net. Only the charge is rounded, net is gross minus
// charge, so charge+net always equals gross exactly.
func Calculate(gross decimal.Decimal, policy domain.ChargePolicy) (Result, error) {
	if !gross.IsPositive() {
		return Result{}, domain.NewError(domain.KindValidation, "amount must be greater than zero")
	}
	if err := policy.Validate(); err != nil {
		return Result{}, err
	}

	var fee decimal.Decimal
	switch policy.Type {
	case domain.ChargePercentage:
		fee = gross.Mul(policy.Value).Div(hundred)
	case domain.ChargeFixed:
		fee = decimal.Min(policy.Value, gross)
	}
	fee = fee.Round(moneyPlaces)
	if fee.GreaterThan(gross) {
		fee = gross
	}

	return Result{
		Gross:  gross,
		Charge: fee,
		Net:    gross.Sub(fee),
	}, nil
}

// Percent returns amount*percent/100 rounded to cents.
func Percent(amount, percent decimal.Decimal) decimal.Decimal {
	return amount.Mul(percent).Div(hundred).Round(moneyPlaces)
}
