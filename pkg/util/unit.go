package util

import (
	"math/big"

	"github.com/ethereum/go-ethereum/params"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var winPerWan = decimal.New(1, 18)

// WanToWin parses a decimal WAN amount ("500000", "0.25") into win.
// Amounts finer than one win are rejected.
func WanToWin(value string) (*big.Int, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, errors.Wrapf(err, "parse amount %q", value)
	}
	win := d.Mul(winPerWan)
	if !win.Equal(win.Truncate(0)) {
		return nil, errors.Errorf("amount %q has more than 18 decimals", value)
	}
	return win.BigInt(), nil
}

func WinToWan(win *big.Int) *big.Float {
	return new(big.Float).Quo(new(big.Float).SetInt(win), big.NewFloat(params.Ether))
}
