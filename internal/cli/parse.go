package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sebastianlopezramirez/ledger/internal/common"
	"github.com/shopspring/decimal"
)

// ParseAmount reads a strictly positive amount in decimal notation, e.g. "1500" or "1500.50".
func ParseAmount(text string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Zero, common.NewUserError(
			"Only numbers are allowed, for example 1500 or 1500.50", common.ErrParse)
	}
	if !value.IsPositive() {
		return decimal.Zero, common.NewUserError(
			"The amount must be greater than zero", common.ErrRange)
	}
	return value, nil
}

// ParseMenuChoice reads a menu option in the inclusive range 1..maxChoice.
func ParseMenuChoice(text string, maxChoice int) (int, error) {
	choice, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, common.NewUserError("Enter only the number of a menu option", common.ErrParse)
	}
	if choice < 1 || choice > maxChoice {
		return 0, common.NewUserError(
			fmt.Sprintf("Choose a number between 1 and %d", maxChoice), common.ErrRange)
	}
	return choice, nil
}
