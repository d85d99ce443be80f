package util

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// FromHexString returns a byte array given a hex string, with or without the 0x prefix
func FromHexString(data string) ([]byte, error) {
	data = strings.TrimPrefix(strings.TrimPrefix(data, "0x"), "0X")
	if len(data)%2 == 1 {
		// Odd number of characters; even it up
		data = "0" + data
	}
	ret, err := hex.DecodeString(data)
	if err != nil {
		return nil, errors.Wrap(err, "decode hex")
	}
	return ret, nil
}
