// Package csc encodes calls to the PoS staking contract.
package csc

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/linki/go-wanchain/pkg/abi"
)

const (
	MethodStakeAppend = "stakeAppend"
	MethodStakeUpdate = "stakeUpdate"
	MethodStakeIn     = "stakeIn"
	MethodPartnerIn   = "partnerIn"
	MethodDelegateIn  = "delegateIn"
	MethodDelegateOut = "delegateOut"
)

var Staking *abi.Abi

func init() {
	var err error
	Staking, err = abi.New(StakingABIJSON)
	if err != nil {
		panic(err)
	}
}

// PartnerIn adds value to the stake of the validator at addr as a partner.
func PartnerIn(addr common.Address, renewal bool) ([]byte, error) {
	return Staking.PackInput(MethodPartnerIn, addr, renewal)
}

func StakeAppend(addr common.Address) ([]byte, error) {
	return Staking.PackInput(MethodStakeAppend, addr)
}

func StakeUpdate(addr common.Address, lockEpochs *big.Int) ([]byte, error) {
	return Staking.PackInput(MethodStakeUpdate, addr, lockEpochs)
}

func StakeIn(secPk, bn256Pk []byte, lockEpochs, feeRate *big.Int) ([]byte, error) {
	return Staking.PackInput(MethodStakeIn, secPk, bn256Pk, lockEpochs, feeRate)
}

func DelegateIn(addr common.Address) ([]byte, error) {
	return Staking.PackInput(MethodDelegateIn, addr)
}

func DelegateOut(addr common.Address) ([]byte, error) {
	return Staking.PackInput(MethodDelegateOut, addr)
}
