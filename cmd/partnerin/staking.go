// Copyright 2021 Compass Systems
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"context"
	"fmt"
	"math/big"

	log "github.com/ChainSafe/log15"
	"github.com/linki/go-wanchain/config"
	"github.com/linki/go-wanchain/internal/constant"
	"github.com/linki/go-wanchain/internal/staking"
	"github.com/linki/go-wanchain/pkg/ethclient"
	"github.com/linki/go-wanchain/pkg/keystore"
	"github.com/linki/go-wanchain/pkg/util"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// dataHandler is a struct which wraps any extra data our CMD functions need that cannot be passed through parameters
type dataHandler struct {
	cfg     *config.Config
	account staking.Account
	staker  *staking.Staker
}

// wrapHandler takes in a Cmd function (all declared below) and wraps
// it in the correct signature for the Cli Commands
func wrapHandler(hdl func(context.Context, *cli.Context, *dataHandler) error) cli.ActionFunc {

	return func(ctx *cli.Context) error {
		err := startLogger(ctx)
		if err != nil {
			return err
		}

		cfg, err := config.GetConfig(ctx)
		if err != nil {
			return err
		}

		client, err := ethclient.DialContext(ctx.Context, cfg.Endpoint)
		if err != nil {
			return errors.Wrapf(err, "dial %s", cfg.Endpoint)
		}
		defer client.Close()

		scfg := staking.DefaultConfig()
		scfg.Contract = cfg.Contract
		scfg.Gas = cfg.Gas
		scfg.UnlockSeconds = cfg.UnlockDuration
		if cfg.GasPrice != nil {
			scfg.GasPrice = cfg.GasPrice
		}

		password, err := keystore.PasswordFor(cfg.From, cfg.Password)
		if err != nil {
			return err
		}

		dh := &dataHandler{
			cfg: cfg,
			account: staking.Account{
				Address:  cfg.From,
				Password: password,
			},
			staker: staking.New(client, scfg, log.Root().New("module", "staking")),
		}

		rctx, cancel := context.WithTimeout(ctx.Context, constant.RpcTimeOut)
		defer cancel()
		return hdl(rctx, ctx, dh)
	}
}

// handlePartnerIn funds the miner and joins it as a partner
func handlePartnerIn(rctx context.Context, _ *cli.Context, dh *dataHandler) error {
	log.Info("Joining miner as partner...", "miner", dh.cfg.Miner.Hex())

	res, err := dh.staker.RegisterPartner(rctx, staking.PartnerParams{
		Account: dh.account,
		Miner:   dh.cfg.Miner,
		Renewal: dh.cfg.Renewal,
		Stake:   dh.cfg.Value,
		Fund:    dh.cfg.Fund,
	})
	if res != nil && res.FundTx != constant.ZeroHash {
		fmt.Println("pay=" + res.FundTx.Hex())
	}
	if err != nil {
		return err
	}
	fmt.Println("tx=" + res.PartnerTx.Hex())
	return nil
}

func handleStakeIn(rctx context.Context, ctx *cli.Context, dh *dataHandler) error {
	secPk, err := util.FromHexString(config.Lookup(ctx, config.SecPkFlag.Name).String(config.SecPkFlag.Name))
	if err != nil {
		return errors.Wrap(err, "secPk")
	}
	bn256Pk, err := util.FromHexString(config.Lookup(ctx, config.Bn256PkFlag.Name).String(config.Bn256PkFlag.Name))
	if err != nil {
		return errors.Wrap(err, "bn256Pk")
	}

	hash, err := dh.staker.StakeIn(rctx, dh.account, staking.StakeInParams{
		SecPk:      secPk,
		Bn256Pk:    bn256Pk,
		LockEpochs: big.NewInt(config.Lookup(ctx, config.LockEpochsFlag.Name).Int64(config.LockEpochsFlag.Name)),
		FeeRate:    big.NewInt(config.Lookup(ctx, config.FeeRateFlag.Name).Int64(config.FeeRateFlag.Name)),
		Value:      dh.cfg.Value,
	})
	return printTx(hash.Hex(), err)
}

func handleStakeAppend(rctx context.Context, _ *cli.Context, dh *dataHandler) error {
	hash, err := dh.staker.StakeAppend(rctx, dh.account, dh.cfg.Miner, dh.cfg.Value)
	return printTx(hash.Hex(), err)
}

func handleStakeUpdate(rctx context.Context, ctx *cli.Context, dh *dataHandler) error {
	lockEpochs := big.NewInt(config.Lookup(ctx, config.LockEpochsFlag.Name).Int64(config.LockEpochsFlag.Name))
	hash, err := dh.staker.StakeUpdate(rctx, dh.account, dh.cfg.Miner, lockEpochs)
	return printTx(hash.Hex(), err)
}

func handleDelegateIn(rctx context.Context, _ *cli.Context, dh *dataHandler) error {
	hash, err := dh.staker.DelegateIn(rctx, dh.account, dh.cfg.Miner, dh.cfg.Value)
	return printTx(hash.Hex(), err)
}

func handleDelegateOut(rctx context.Context, _ *cli.Context, dh *dataHandler) error {
	hash, err := dh.staker.DelegateOut(rctx, dh.account, dh.cfg.Miner)
	return printTx(hash.Hex(), err)
}

func printTx(hash string, err error) error {
	if err != nil {
		return err
	}
	fmt.Println("tx=" + hash)
	return nil
}
