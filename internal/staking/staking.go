// Package staking submits PoS staking contract transactions from a
// node-managed account.
package staking

import (
	"context"
	"math/big"

	"github.com/ChainSafe/log15"
	"github.com/ethereum/go-ethereum/common"
	"github.com/linki/go-wanchain/internal/constant"
	"github.com/linki/go-wanchain/internal/csc"
	"github.com/linki/go-wanchain/pkg/ethclient"
	"github.com/linki/go-wanchain/pkg/util"
	"github.com/pkg/errors"
)

// Backend is the node RPC surface used by a Staker.
type Backend interface {
	UnlockAccount(ctx context.Context, account common.Address, password string, seconds uint64) (bool, error)
	SendTransaction(ctx context.Context, args ethclient.TransactionArgs) (common.Hash, error)
}

type Config struct {
	Contract      common.Address
	Gas           uint64
	GasPrice      *big.Int
	UnlockSeconds uint64
}

func DefaultConfig() Config {
	return Config{
		Contract: constant.StakingContract,
		Gas:      constant.DefaultGas,
		GasPrice: new(big.Int).Set(constant.DefaultGasPrice),
	}
}

// Account is the node-managed account funding the transactions.
type Account struct {
	Address  common.Address
	Password string
}

type Staker struct {
	backend Backend
	cfg     Config
	log     log15.Logger
}

func New(backend Backend, cfg Config, log log15.Logger) *Staker {
	return &Staker{backend: backend, cfg: cfg, log: log}
}

// Unlock unlocks the account on the node so that it signs the following transactions.
func (s *Staker) Unlock(ctx context.Context, acct Account) error {
	if acct.Address == constant.ZeroAddress {
		return errors.Wrap(constant.ErrZeroAddress, "from")
	}
	ok, err := s.backend.UnlockAccount(ctx, acct.Address, acct.Password, s.cfg.UnlockSeconds)
	if err != nil {
		return errors.Wrapf(err, "unlock %s", acct.Address.Hex())
	}
	if !ok {
		return errors.Wrapf(constant.ErrUnlockRejected, "unlock %s", acct.Address.Hex())
	}
	s.log.Info("Account unlocked", "account", acct.Address.Hex())
	return nil
}

// Fund transfers value to miner. Gas and gas price are left to the node.
func (s *Staker) Fund(ctx context.Context, from, miner common.Address, value *big.Int) (common.Hash, error) {
	if miner == constant.ZeroAddress {
		return common.Hash{}, errors.Wrap(constant.ErrZeroAddress, "miner")
	}
	args := ethclient.NewTransactionArgs(from, miner, value, 0, nil, nil)
	hash, err := s.backend.SendTransaction(ctx, args)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "fund miner")
	}
	s.log.Info("Miner funded", "miner", miner.Hex(), "value", util.WinToWan(value).String(), "tx", hash.Hex())
	return hash, nil
}

// PartnerIn joins the validator at miner as a partner with value staked.
func (s *Staker) PartnerIn(ctx context.Context, from, miner common.Address, renewal bool, value *big.Int) (common.Hash, error) {
	if err := checkStake(value); err != nil {
		return common.Hash{}, err
	}
	if miner == constant.ZeroAddress {
		return common.Hash{}, errors.Wrap(constant.ErrZeroAddress, "miner")
	}
	input, err := csc.PartnerIn(miner, renewal)
	if err != nil {
		return common.Hash{}, err
	}
	return s.call(ctx, from, csc.MethodPartnerIn, value, input)
}

type PartnerParams struct {
	Account
	Miner   common.Address
	Renewal bool
	Stake   *big.Int
	// Fund is transferred to the miner before staking; zero skips the transfer.
	Fund *big.Int
}

type PartnerResult struct {
	FundTx    common.Hash
	PartnerTx common.Hash
}

// RegisterPartner unlocks the account, funds the miner and calls partnerIn, in
// that order. The first failing step ends the run.
func (s *Staker) RegisterPartner(ctx context.Context, p PartnerParams) (*PartnerResult, error) {
	if err := checkStake(p.Stake); err != nil {
		return nil, err
	}
	if p.Miner == constant.ZeroAddress {
		return nil, errors.Wrap(constant.ErrZeroAddress, "miner")
	}
	fund := p.Fund
	if fund == nil {
		fund = new(big.Int)
	}
	if fund.Sign() < 0 {
		return nil, errors.Wrap(constant.ErrInvalidValue, "negative fund")
	}

	if err := s.Unlock(ctx, p.Account); err != nil {
		return nil, err
	}

	res := &PartnerResult{}
	if fund.Sign() > 0 {
		hash, err := s.Fund(ctx, p.Address, p.Miner, fund)
		if err != nil {
			return nil, err
		}
		res.FundTx = hash
	} else {
		s.log.Debug("Skip funding miner", "miner", p.Miner.Hex())
	}

	hash, err := s.PartnerIn(ctx, p.Address, p.Miner, p.Renewal, p.Stake)
	if err != nil {
		return res, err
	}
	res.PartnerTx = hash
	return res, nil
}

type StakeInParams struct {
	SecPk      []byte
	Bn256Pk    []byte
	LockEpochs *big.Int
	FeeRate    *big.Int
	Value      *big.Int
}

// StakeIn registers a new validator with its secp256k1 and bn256 public keys.
func (s *Staker) StakeIn(ctx context.Context, acct Account, p StakeInParams) (common.Hash, error) {
	if err := checkStake(p.Value); err != nil {
		return common.Hash{}, err
	}
	if len(p.SecPk) == 0 || len(p.Bn256Pk) == 0 {
		return common.Hash{}, errors.New("validator public keys are required")
	}
	if err := checkNonNegative(p.LockEpochs, "lock epochs"); err != nil {
		return common.Hash{}, err
	}
	if err := checkNonNegative(p.FeeRate, "fee rate"); err != nil {
		return common.Hash{}, err
	}
	input, err := csc.StakeIn(p.SecPk, p.Bn256Pk, p.LockEpochs, p.FeeRate)
	if err != nil {
		return common.Hash{}, err
	}
	return s.unlockAndCall(ctx, acct, csc.MethodStakeIn, p.Value, input)
}

// StakeAppend adds value to the stake of the validator.
func (s *Staker) StakeAppend(ctx context.Context, acct Account, validator common.Address, value *big.Int) (common.Hash, error) {
	if err := checkPositive(value); err != nil {
		return common.Hash{}, err
	}
	if validator == constant.ZeroAddress {
		return common.Hash{}, errors.Wrap(constant.ErrZeroAddress, "validator")
	}
	input, err := csc.StakeAppend(validator)
	if err != nil {
		return common.Hash{}, err
	}
	return s.unlockAndCall(ctx, acct, csc.MethodStakeAppend, value, input)
}

// StakeUpdate changes the lock period of the validator.
func (s *Staker) StakeUpdate(ctx context.Context, acct Account, validator common.Address, lockEpochs *big.Int) (common.Hash, error) {
	if validator == constant.ZeroAddress {
		return common.Hash{}, errors.Wrap(constant.ErrZeroAddress, "validator")
	}
	if err := checkNonNegative(lockEpochs, "lock epochs"); err != nil {
		return common.Hash{}, err
	}
	input, err := csc.StakeUpdate(validator, lockEpochs)
	if err != nil {
		return common.Hash{}, err
	}
	return s.unlockAndCall(ctx, acct, csc.MethodStakeUpdate, nil, input)
}

// DelegateIn delegates value to the validator.
func (s *Staker) DelegateIn(ctx context.Context, acct Account, validator common.Address, value *big.Int) (common.Hash, error) {
	if err := checkPositive(value); err != nil {
		return common.Hash{}, err
	}
	if validator == constant.ZeroAddress {
		return common.Hash{}, errors.Wrap(constant.ErrZeroAddress, "validator")
	}
	input, err := csc.DelegateIn(validator)
	if err != nil {
		return common.Hash{}, err
	}
	return s.unlockAndCall(ctx, acct, csc.MethodDelegateIn, value, input)
}

// DelegateOut withdraws the delegation from the validator.
func (s *Staker) DelegateOut(ctx context.Context, acct Account, validator common.Address) (common.Hash, error) {
	if validator == constant.ZeroAddress {
		return common.Hash{}, errors.Wrap(constant.ErrZeroAddress, "validator")
	}
	input, err := csc.DelegateOut(validator)
	if err != nil {
		return common.Hash{}, err
	}
	return s.unlockAndCall(ctx, acct, csc.MethodDelegateOut, nil, input)
}

func (s *Staker) unlockAndCall(ctx context.Context, acct Account, method string, value *big.Int, input []byte) (common.Hash, error) {
	if err := s.Unlock(ctx, acct); err != nil {
		return common.Hash{}, err
	}
	return s.call(ctx, acct.Address, method, value, input)
}

// call sends input to the staking contract with the configured gas and gas price.
func (s *Staker) call(ctx context.Context, from common.Address, method string, value *big.Int, input []byte) (common.Hash, error) {
	if value == nil {
		value = new(big.Int)
	}
	if value.Sign() > 0 && !csc.Staking.Payable(method) {
		return common.Hash{}, errors.Errorf("%s does not accept value", method)
	}
	args := ethclient.NewTransactionArgs(from, s.cfg.Contract, value, s.cfg.Gas, s.cfg.GasPrice, input)
	s.log.Info("Send staking tx", "method", method, "contract", s.cfg.Contract.Hex(), "value", util.WinToWan(value).String(),
		"gas", s.cfg.Gas, "gasPrice", s.cfg.GasPrice)
	hash, err := s.backend.SendTransaction(ctx, args)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, method)
	}
	s.log.Info("Staking tx sent", "method", method, "tx", hash.Hex())
	return hash, nil
}

func checkStake(value *big.Int) error {
	if value == nil || value.Cmp(constant.MinStakeValue) < 0 {
		return errors.Wrapf(constant.ErrStakeTooLow, "at least %d WAN", constant.MinStakeValueWan)
	}
	return nil
}

func checkPositive(value *big.Int) error {
	if value == nil || value.Sign() <= 0 {
		return errors.Wrap(constant.ErrInvalidValue, "value must be positive")
	}
	return nil
}

// checkNonNegative guards uint256 arguments, which the ABI encoder would wrap
// from negative to 2^256-x.
func checkNonNegative(v *big.Int, name string) error {
	if v == nil {
		return errors.Wrapf(constant.ErrInvalidValue, "missing %s", name)
	}
	if v.Sign() < 0 {
		return errors.Wrapf(constant.ErrInvalidValue, "negative %s", name)
	}
	return nil
}
