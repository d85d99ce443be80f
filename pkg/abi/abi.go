package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/pkg/errors"
)

type Abi struct {
	contractAbi abi.ABI
}

func New(abiStr string) (*Abi, error) {
	a, err := abi.JSON(strings.NewReader(abiStr))
	if err != nil {
		return nil, err
	}

	return &Abi{contractAbi: a}, nil
}

func (a *Abi) PackInput(abiMethod string, params ...interface{}) ([]byte, error) {
	input, err := a.contractAbi.Pack(abiMethod, params...)
	if err != nil {
		return nil, errors.Wrapf(err, "pack %s", abiMethod)
	}
	return input, nil
}

// UnpackInput decodes call data produced by PackInput back into its arguments.
func (a *Abi) UnpackInput(data []byte) (string, []interface{}, error) {
	if len(data) < 4 {
		return "", nil, errors.New("input shorter than method selector")
	}
	method, err := a.contractAbi.MethodById(data[:4])
	if err != nil {
		return "", nil, errors.Wrap(err, "method by id")
	}
	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return "", nil, errors.Wrapf(err, "unpack %s", method.Name)
	}
	return method.Name, args, nil
}

// Payable reports whether the method accepts value.
func (a *Abi) Payable(method string) bool {
	m, ok := a.contractAbi.Methods[method]
	return ok && m.IsPayable()
}
