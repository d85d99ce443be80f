// Copyright 2021 Compass Systems
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"os"
	"strconv"

	log "github.com/ChainSafe/log15"
	"github.com/linki/go-wanchain/config"
	"github.com/urfave/cli/v2"
)

var app = cli.NewApp()

var cliFlags = []cli.Flag{
	config.ConfigFileFlag,
	config.VerbosityFlag,
	config.EndpointFlag,
	config.FromFlag,
	config.PasswordFlag,
	config.UnlockSecondsFlag,
	config.ContractFlag,
	config.GasFlag,
	config.GasPriceFlag,
}

var partnerFlags = []cli.Flag{
	config.MinerFlag,
	config.ValueFlag,
	config.FundFlag,
	config.RenewalFlag,
}

var stakeInFlags = []cli.Flag{
	config.SecPkFlag,
	config.Bn256PkFlag,
	config.LockEpochsFlag,
	config.FeeRateFlag,
	config.ValueFlag,
}

var validatorValueFlags = []cli.Flag{
	config.MinerFlag,
	config.ValueFlag,
}

var partnerInCommand = cli.Command{
	Name:  "partner-in",
	Usage: "fund a miner and join its stake as a partner",
	Description: "The partner-in command unlocks the fund source account, sends --fund WAN to the miner\n" +
		"\tand calls partnerIn on the staking contract with --value WAN.\n" +
		"\tTo join a miner : partnerin partner-in --from '0x0...' --miner '0x0...' --value 500000",
	Action: wrapHandler(handlePartnerIn),
	Flags:  append(append([]cli.Flag{}, cliFlags...), partnerFlags...),
}

var stakeInCommand = cli.Command{
	Name:  "stake-in",
	Usage: "register a new validator",
	Description: "The stake-in command registers a validator with its secp256k1 and bn256 public keys.\n" +
		"\tpartnerin stake-in --from '0x0...' --secPk '0x04...' --bn256Pk '0x...' --lockEpochs 10 --feeRate 100",
	Action: wrapHandler(handleStakeIn),
	Flags:  append(append([]cli.Flag{}, cliFlags...), stakeInFlags...),
}

var stakeAppendCommand = cli.Command{
	Name:   "stake-append",
	Usage:  "add stake to an existing validator",
	Action: wrapHandler(handleStakeAppend),
	Flags:  append(append([]cli.Flag{}, cliFlags...), validatorValueFlags...),
}

var stakeUpdateCommand = cli.Command{
	Name:   "stake-update",
	Usage:  "change the lock period of a validator",
	Action: wrapHandler(handleStakeUpdate),
	Flags:  append(append([]cli.Flag{}, cliFlags...), config.MinerFlag, config.LockEpochsFlag),
}

var delegateInCommand = cli.Command{
	Name:   "delegate-in",
	Usage:  "delegate stake to a validator",
	Action: wrapHandler(handleDelegateIn),
	Flags:  append(append([]cli.Flag{}, cliFlags...), validatorValueFlags...),
}

var delegateOutCommand = cli.Command{
	Name:   "delegate-out",
	Usage:  "withdraw the delegation from a validator",
	Action: wrapHandler(handleDelegateOut),
	Flags:  append(append([]cli.Flag{}, cliFlags...), config.MinerFlag),
}

var (
	Version = "1.0.0"
)

// init initializes CLI
func init() {
	app.Action = wrapHandler(handlePartnerIn)
	app.Copyright = "Copyright 2021 Compass Systems"
	app.Name = "partnerin"
	app.Usage = "Register as a PoS partner through a node-managed account"
	app.Version = Version
	app.EnableBashCompletion = true
	app.Commands = []*cli.Command{
		&partnerInCommand,
		&stakeInCommand,
		&stakeAppendCommand,
		&stakeUpdateCommand,
		&delegateInCommand,
		&delegateOutCommand,
	}

	app.Flags = append(app.Flags, cliFlags...)
	app.Flags = append(app.Flags, partnerFlags...)
}

func main() {
	if err := app.Run(os.Args); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func startLogger(ctx *cli.Context) error {
	logger := log.Root()
	handler := logger.GetHandler()
	var lvl log.Lvl

	verbosity := config.Lookup(ctx, config.VerbosityFlag.Name).String(config.VerbosityFlag.Name)

	if lvlToInt, err := strconv.Atoi(verbosity); err == nil {
		lvl = log.Lvl(lvlToInt)
	} else if lvl, err = log.LvlFromString(verbosity); err != nil {
		return err
	}
	log.Root().SetHandler(log.LvlFilterHandler(lvl, handler))

	return nil
}
