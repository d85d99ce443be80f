// Copyright 2021 Compass Systems
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	log "github.com/ChainSafe/log15"
	"github.com/linki/go-wanchain/internal/constant"
	"github.com/urfave/cli/v2"
)

const DefaultEndpoint = "http://127.0.0.1:8545"

var (
	ConfigFileFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "JSON configuration file",
	}

	VerbosityFlag = &cli.StringFlag{
		Name:  "verbosity",
		Usage: "Supports levels crit (silent) to trce (trace)",
		Value: log.LvlInfo.String(),
	}

	EndpointFlag = &cli.StringFlag{
		Name:  "rpc",
		Usage: "RPC endpoint of the node holding the fund source account",
		Value: DefaultEndpoint,
	}

	UnlockSecondsFlag = &cli.Uint64Flag{
		Name:  "unlockDuration",
		Usage: "Seconds the account stays unlocked, 0 keeps the node default",
		Value: constant.DefaultUnlockSeconds,
	}
)

// Account flags
var (
	FromFlag = &cli.StringFlag{
		Name:  "from",
		Usage: "the address of the fund source account",
	}

	PasswordFlag = &cli.StringFlag{
		Name:  "password",
		Usage: "Password of the fund source account. Falls back to KEYSTORE_PASSWORD, then a prompt",
	}
)

// Transaction flags
var (
	ContractFlag = &cli.StringFlag{
		Name:  "contract",
		Usage: "the address of the staking contract",
		Value: constant.StakingContract.Hex(),
	}

	GasFlag = &cli.Uint64Flag{
		Name:  "gas",
		Usage: "gas limit of the staking transaction",
		Value: constant.DefaultGas,
	}

	GasPriceFlag = &cli.StringFlag{
		Name:  "gasPrice",
		Usage: "gas price of the staking transaction in win",
		Value: constant.DefaultGasPrice.String(),
	}
)

// Staking flags
var (
	MinerFlag = &cli.StringFlag{
		Name:  "miner",
		Usage: "the address of the miner (validator) account",
	}

	ValueFlag = &cli.StringFlag{
		Name:  "value",
		Usage: "the amount of WAN to stake",
		Value: constant.DefaultStakeValue,
	}

	FundFlag = &cli.StringFlag{
		Name:  "fund",
		Usage: "the amount of WAN sent to the miner for gas before staking, 0 skips the transfer",
		Value: constant.DefaultFundValue,
	}

	RenewalFlag = &cli.BoolFlag{
		Name:  "renewal",
		Usage: "renew the partnership automatically when the lock period ends",
		Value: true,
	}

	LockEpochsFlag = &cli.Int64Flag{
		Name:  "lockEpochs",
		Usage: "number of epochs the stake stays locked",
		Value: constant.DefaultLockEpochs,
	}

	FeeRateFlag = &cli.Int64Flag{
		Name:  "feeRate",
		Usage: "validator fee rate charged to delegators",
		Value: constant.DefaultFeeRate,
	}

	SecPkFlag = &cli.StringFlag{
		Name:  "secPk",
		Usage: "hex secp256k1 public key of the validator",
	}

	Bn256PkFlag = &cli.StringFlag{
		Name:  "bn256Pk",
		Usage: "hex bn256 public key of the validator",
	}
)
