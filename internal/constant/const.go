package constant

import (
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

const (
	RpcTimeOut = 30 * time.Second
	Agent      = "partnerin-go"
)

// StakingContract is the PoS staking precompile holding partner and delegation state.
var StakingContract = common.HexToAddress("0x00000000000000000000000000000000000000d8")

var (
	ZeroAddress = common.Address{}
	ZeroHash    = common.Hash{}
)

const (
	DefaultGas             uint64 = 200000
	DefaultStakeValue             = "500000"
	DefaultFundValue              = "1"
	DefaultLockEpochs      int64  = 10
	DefaultFeeRate         int64  = 100
	DefaultUnlockSeconds   uint64 = 0 // 0 leaves the node default in place
	MinStakeValueWan              = 100000
	defaultGasPriceWinUnit        = 200000000000
)

var (
	DefaultGasPrice = big.NewInt(defaultGasPriceWinUnit)
	WinPerWan       = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	MinStakeValue   = new(big.Int).Mul(big.NewInt(MinStakeValueWan), WinPerWan)
)

var (
	ErrUnlockRejected = errors.New("account unlock rejected by node")
	ErrZeroAddress    = errors.New("zero address")
	ErrStakeTooLow    = errors.New("stake value below minimum")
	ErrInvalidValue   = errors.New("invalid value")
)
