package config

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/linki/go-wanchain/internal/constant"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

const (
	testFrom  = "0x9da26fc2e1d6ad9fdd46138906b0104ae68a65d8"
	testMiner = "0x2d0e7c0813a51d3bd1d08246af2a8a7a57d8922e"
)

var testFlags = []cli.Flag{
	ConfigFileFlag, EndpointFlag, UnlockSecondsFlag, FromFlag, PasswordFlag, ContractFlag, GasFlag, GasPriceFlag,
	MinerFlag, ValueFlag, FundFlag, RenewalFlag,
}

func runGetConfig(t *testing.T, args ...string) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	app := &cli.App{
		Name:  "test",
		Flags: testFlags,
		Action: func(ctx *cli.Context) error {
			cfg, err = GetConfig(ctx)
			return nil
		},
	}
	require.NoError(t, app.Run(append([]string{"test"}, args...)))
	return cfg, err
}

func wan(v int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(v), constant.WinPerWan)
}

func writeConfig(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestGetConfig_Defaults(t *testing.T) {
	cfg, err := runGetConfig(t, "--from", testFrom, "--miner", testMiner)
	require.NoError(t, err)

	require.Equal(t, DefaultEndpoint, cfg.Endpoint)
	require.Equal(t, common.HexToAddress(testFrom), cfg.From)
	require.Equal(t, common.HexToAddress(testMiner), cfg.Miner)
	require.Equal(t, constant.StakingContract, cfg.Contract)
	require.Equal(t, constant.DefaultGas, cfg.Gas)
	require.Zero(t, constant.DefaultGasPrice.Cmp(cfg.GasPrice))
	require.Zero(t, wan(500000).Cmp(cfg.Value))
	require.Zero(t, wan(1).Cmp(cfg.Fund))
	require.True(t, cfg.Renewal)
	require.Nil(t, cfg.Password)
	require.Zero(t, cfg.UnlockDuration)
}

func TestGetConfig_File(t *testing.T) {
	path := writeConfig(t, "config.json", `{
		"rpc": "http://10.0.0.1:8545",
		"from": "`+testFrom+`",
		"password": "pwd",
		"miner": "`+testMiner+`",
		"value": "120000.5",
		"fund": "0",
		"renewal": false,
		"gas": 300000,
		"gasPrice": "0x2e90edd000",
		"unlockDuration": 60
	}`)

	cfg, err := runGetConfig(t, "--config", path)
	require.NoError(t, err)
	require.Equal(t, "http://10.0.0.1:8545", cfg.Endpoint)
	require.NotNil(t, cfg.Password)
	require.Equal(t, "pwd", *cfg.Password)
	require.False(t, cfg.Renewal)
	require.Equal(t, uint64(300000), cfg.Gas)
	require.Equal(t, uint64(60), cfg.UnlockDuration)
	require.Zero(t, big.NewInt(200000000000).Cmp(cfg.GasPrice))
	require.Zero(t, cfg.Fund.Sign())
	want, _ := new(big.Int).SetString("120000500000000000000000", 10)
	require.Zero(t, want.Cmp(cfg.Value))
}

func TestGetConfig_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "config.json", `{"rpc": "http://10.0.0.1:8545", "from": "`+testFrom+`", "value": "200000", "renewal": false}`)

	cfg, err := runGetConfig(t, "--config", path, "--rpc", "ws://127.0.0.1:8546", "--value", "300000", "--renewal=true")
	require.NoError(t, err)
	require.Equal(t, "ws://127.0.0.1:8546", cfg.Endpoint)
	require.Zero(t, wan(300000).Cmp(cfg.Value))
	require.True(t, cfg.Renewal)
}

func TestGetConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "missing from", args: []string{"--miner", testMiner}},
		{name: "bad from", args: []string{"--from", "0x1234"}},
		{name: "bad miner", args: []string{"--from", testFrom, "--miner", "miner"}},
		{name: "bad value", args: []string{"--from", testFrom, "--value", "lots"}},
		{name: "bad gas price", args: []string{"--from", testFrom, "--gasPrice", "-5"}},
		{name: "empty rpc", args: []string{"--from", testFrom, "--rpc", ""}},
		{name: "missing file", args: []string{"--config", "/nonexistent/config.json"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runGetConfig(t, tt.args...)
			require.Error(t, err)
		})
	}
}

func TestGetConfig_UnknownExtension(t *testing.T) {
	path := writeConfig(t, "config.toml", `rpc = "http://127.0.0.1:8545"`)
	_, err := runGetConfig(t, "--config", path)
	require.ErrorContains(t, err, "unrecognized extention")
}

func TestGetConfig_EmptyPassword(t *testing.T) {
	cfg, err := runGetConfig(t, "--from", testFrom, "--password", "")
	require.NoError(t, err)
	require.NotNil(t, cfg.Password)
	require.Empty(t, *cfg.Password)
}

func TestGetConfig_AppFlagsBeforeSubcommand(t *testing.T) {
	var (
		cfg    *Config
		cfgErr error
	)
	app := &cli.App{
		Name:  "test",
		Flags: testFlags,
		Commands: []*cli.Command{{
			Name:  "sub",
			Flags: testFlags,
			Action: func(ctx *cli.Context) error {
				cfg, cfgErr = GetConfig(ctx)
				return nil
			},
		}},
	}
	err := app.Run([]string{"test", "--from", testFrom, "--password", "pwd", "--gas", "300000",
		"sub", "--miner", testMiner})
	require.NoError(t, err)
	require.NoError(t, cfgErr)
	require.Equal(t, common.HexToAddress(testFrom), cfg.From)
	require.Equal(t, common.HexToAddress(testMiner), cfg.Miner)
	require.Equal(t, uint64(300000), cfg.Gas)
	require.NotNil(t, cfg.Password)
	require.Equal(t, "pwd", *cfg.Password)
	require.Equal(t, DefaultEndpoint, cfg.Endpoint)
}
