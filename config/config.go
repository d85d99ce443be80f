// Copyright 2021 Compass Systems
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	log "github.com/ChainSafe/log15"
	"github.com/ethereum/go-ethereum/common"
	"github.com/linki/go-wanchain/pkg/util"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// RawConfig is the on-disk form of Config. Amounts are decimal WAN strings,
// gasPrice is in win.
type RawConfig struct {
	Endpoint       string  `json:"rpc"`
	From           string  `json:"from"`
	Password       *string `json:"password,omitempty"`
	Miner          string  `json:"miner,omitempty"`
	Value          string  `json:"value,omitempty"`
	Fund           string  `json:"fund,omitempty"`
	Renewal        *bool   `json:"renewal,omitempty"`
	Contract       string  `json:"contract,omitempty"`
	Gas            uint64  `json:"gas,omitempty"`
	GasPrice       string  `json:"gasPrice,omitempty"`
	UnlockDuration uint64  `json:"unlockDuration,omitempty"`
}

type Config struct {
	Endpoint       string
	From           common.Address
	Password       *string // nil when neither the flag nor the file gives one
	Miner          common.Address
	Value          *big.Int // win
	Fund           *big.Int // win
	Renewal        bool
	Contract       common.Address
	Gas            uint64
	GasPrice       *big.Int
	UnlockDuration uint64
}

func loadConfig(file string, raw *RawConfig) error {
	ext := filepath.Ext(file)
	fp, err := filepath.Abs(file)
	if err != nil {
		return err
	}

	log.Debug("Loading configuration", "path", filepath.Clean(fp))

	f, err := os.Open(filepath.Clean(fp))
	if err != nil {
		return err
	}
	defer f.Close()

	if ext != ".json" {
		return fmt.Errorf("unrecognized extention: %s", ext)
	}
	return json.NewDecoder(f).Decode(raw)
}

// Lookup returns the context in the command lineage where name was set
// explicitly, so that app flags given before the subcommand are not shadowed
// by the subcommand's defaults. It returns ctx when the flag is set nowhere.
func Lookup(ctx *cli.Context, name string) *cli.Context {
	for _, c := range ctx.Lineage() {
		if c.IsSet(name) {
			return c
		}
	}
	return ctx
}

func isSet(ctx *cli.Context, name string) bool {
	return Lookup(ctx, name).IsSet(name)
}

// GetConfig reads the optional config file and applies the flags on top of it.
// A flag wins over the file only when set explicitly; otherwise the file
// value wins over the flag default.
func GetConfig(ctx *cli.Context) (*Config, error) {
	var raw RawConfig
	if path := Lookup(ctx, ConfigFileFlag.Name).String(ConfigFileFlag.Name); path != "" {
		if err := loadConfig(path, &raw); err != nil {
			return nil, errors.Wrap(err, "load config")
		}
	}

	pick := func(flag *cli.StringFlag, fileValue string) string {
		if isSet(ctx, flag.Name) || fileValue == "" {
			return Lookup(ctx, flag.Name).String(flag.Name)
		}
		return fileValue
	}
	raw.Endpoint = pick(EndpointFlag, raw.Endpoint)
	raw.From = pick(FromFlag, raw.From)
	if isSet(ctx, PasswordFlag.Name) {
		pswd := Lookup(ctx, PasswordFlag.Name).String(PasswordFlag.Name)
		raw.Password = &pswd
	}
	raw.Miner = pick(MinerFlag, raw.Miner)
	raw.Value = pick(ValueFlag, raw.Value)
	raw.Fund = pick(FundFlag, raw.Fund)
	raw.Contract = pick(ContractFlag, raw.Contract)
	raw.GasPrice = pick(GasPriceFlag, raw.GasPrice)
	if isSet(ctx, GasFlag.Name) || raw.Gas == 0 {
		raw.Gas = Lookup(ctx, GasFlag.Name).Uint64(GasFlag.Name)
	}
	if isSet(ctx, UnlockSecondsFlag.Name) || raw.UnlockDuration == 0 {
		raw.UnlockDuration = Lookup(ctx, UnlockSecondsFlag.Name).Uint64(UnlockSecondsFlag.Name)
	}
	if isSet(ctx, RenewalFlag.Name) || raw.Renewal == nil {
		renewal := Lookup(ctx, RenewalFlag.Name).Bool(RenewalFlag.Name)
		raw.Renewal = &renewal
	}

	return raw.Parse()
}

// Parse validates the raw values and converts them to their typed form.
func (raw *RawConfig) Parse() (*Config, error) {
	if raw.Endpoint == "" {
		return nil, errors.New("rpc endpoint is required")
	}
	from, err := parseAddress("from", raw.From, true)
	if err != nil {
		return nil, err
	}
	miner, err := parseAddress("miner", raw.Miner, false)
	if err != nil {
		return nil, err
	}
	contract, err := parseAddress("contract", raw.Contract, true)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Endpoint:       raw.Endpoint,
		From:           from,
		Password:       raw.Password,
		Miner:          miner,
		Contract:       contract,
		Gas:            raw.Gas,
		UnlockDuration: raw.UnlockDuration,
		Renewal:        raw.Renewal == nil || *raw.Renewal,
	}
	if raw.Value != "" {
		if cfg.Value, err = util.WanToWin(raw.Value); err != nil {
			return nil, errors.Wrap(err, "value")
		}
	}
	if raw.Fund != "" {
		if cfg.Fund, err = util.WanToWin(raw.Fund); err != nil {
			return nil, errors.Wrap(err, "fund")
		}
	}
	if raw.GasPrice != "" {
		gasPrice, ok := new(big.Int).SetString(raw.GasPrice, 0)
		if !ok || gasPrice.Sign() < 0 {
			return nil, fmt.Errorf("invalid gasPrice: %s", raw.GasPrice)
		}
		cfg.GasPrice = gasPrice
	}
	return cfg, nil
}

func parseAddress(name, value string, required bool) (common.Address, error) {
	if value == "" {
		if required {
			return common.Address{}, fmt.Errorf("%s address is required", name)
		}
		return common.Address{}, nil
	}
	if !common.IsHexAddress(value) {
		return common.Address{}, fmt.Errorf("invalid %s address: %s", name, value)
	}
	return common.HexToAddress(value), nil
}
