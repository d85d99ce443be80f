package main

import (
	"math/big"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/linki/go-wanchain/internal/constant"
	"github.com/linki/go-wanchain/internal/csc"
	"github.com/linki/go-wanchain/pkg/ethclient"
	"github.com/stretchr/testify/require"
)

const (
	testFrom  = "0x9da26fc2e1d6ad9fdd46138906b0104ae68a65d8"
	testMiner = "0x2d0e7c0813a51d3bd1d08246af2a8a7a57d8922e"
)

type nodeLog struct {
	calls []string
	sent  []ethclient.TransactionArgs
}

type personalAPI struct{ log *nodeLog }

func (api *personalAPI) UnlockAccount(account common.Address, password string, duration *uint64) (bool, error) {
	api.log.calls = append(api.log.calls, "personal_unlockAccount")
	return account == common.HexToAddress(testFrom) && password == "pwd", nil
}

type ethAPI struct{ log *nodeLog }

func (api *ethAPI) SendTransaction(args ethclient.TransactionArgs) (common.Hash, error) {
	api.log.calls = append(api.log.calls, "eth_sendTransaction")
	api.log.sent = append(api.log.sent, args)
	return common.BigToHash(big.NewInt(int64(len(api.log.sent)))), nil
}

func startNode(t *testing.T) (string, *nodeLog) {
	nl := &nodeLog{}
	server := rpc.NewServer()
	require.NoError(t, server.RegisterName("personal", &personalAPI{nl}))
	require.NoError(t, server.RegisterName("eth", &ethAPI{nl}))
	httpServer := httptest.NewServer(server)
	t.Cleanup(func() {
		httpServer.Close()
		server.Stop()
	})
	return httpServer.URL, nl
}

func TestPartnerInCommand(t *testing.T) {
	url, nl := startNode(t)

	err := app.Run([]string{"partnerin", "partner-in",
		"--rpc", url, "--from", testFrom, "--password", "pwd", "--miner", testMiner, "--verbosity", "crit"})
	require.NoError(t, err)
	require.Equal(t, []string{"personal_unlockAccount", "eth_sendTransaction", "eth_sendTransaction"}, nl.calls)

	partner := nl.sent[1]
	require.Equal(t, constant.StakingContract, *partner.To)
	require.Equal(t, constant.DefaultGas, uint64(*partner.Gas))
	want := new(big.Int).Mul(big.NewInt(500000), constant.WinPerWan)
	require.Zero(t, want.Cmp(partner.Value.ToInt()))

	name, args, err := csc.Staking.UnpackInput(partner.Data)
	require.NoError(t, err)
	require.Equal(t, csc.MethodPartnerIn, name)
	require.Equal(t, []interface{}{common.HexToAddress(testMiner), true}, args)
}

func TestDefaultActionRejectsWrongPassword(t *testing.T) {
	url, nl := startNode(t)

	err := app.Run([]string{"partnerin",
		"--rpc", url, "--from", testFrom, "--password", "bad", "--miner", testMiner, "--verbosity", "crit"})
	require.ErrorIs(t, err, constant.ErrUnlockRejected)
	require.Equal(t, []string{"personal_unlockAccount"}, nl.calls)
}

func TestDelegateOutCommand(t *testing.T) {
	url, nl := startNode(t)

	err := app.Run([]string{"partnerin", "delegate-out",
		"--rpc", url, "--from", testFrom, "--password", "pwd", "--miner", testMiner, "--verbosity", "crit"})
	require.NoError(t, err)
	require.Len(t, nl.sent, 1)
	require.Zero(t, nl.sent[0].Value.ToInt().Sign())

	name, _, err := csc.Staking.UnpackInput(nl.sent[0].Data)
	require.NoError(t, err)
	require.Equal(t, csc.MethodDelegateOut, name)
}

func TestStakeUpdateCommandWithAppFlags(t *testing.T) {
	url, nl := startNode(t)

	err := app.Run([]string{"partnerin", "--rpc", url, "--from", testFrom, "--password", "pwd", "--verbosity", "crit",
		"stake-update", "--miner", testMiner, "--lockEpochs", "7"})
	require.NoError(t, err)
	require.Equal(t, []string{"personal_unlockAccount", "eth_sendTransaction"}, nl.calls)

	name, args, err := csc.Staking.UnpackInput(nl.sent[0].Data)
	require.NoError(t, err)
	require.Equal(t, csc.MethodStakeUpdate, name)
	require.Equal(t, []interface{}{common.HexToAddress(testMiner), big.NewInt(7)}, args)
}

func TestStakeInCommandRejectsNegativeFeeRate(t *testing.T) {
	url, nl := startNode(t)

	err := app.Run([]string{"partnerin", "stake-in", "--rpc", url, "--from", testFrom, "--password", "pwd",
		"--verbosity", "crit", "--secPk", "0x0401", "--bn256Pk", "0x02", "--value", "100000", "--feeRate", "-5"})
	require.ErrorIs(t, err, constant.ErrInvalidValue)
	require.Empty(t, nl.calls)
}
