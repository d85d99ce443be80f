// Package keystore resolves the password the node needs to unlock the fund
// source account. Keys stay on the node.
package keystore

import (
	"fmt"
	"os"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	terminal "golang.org/x/term"
)

const (
	EnvPassword = "KEYSTORE_PASSWORD"
)

var ErrNoTerminal = errors.New("no password given and stdin is not a terminal; use --password or " + EnvPassword)

var (
	// replaced in tests
	prompt     = GetPassword
	isTerminal = func() bool { return terminal.IsTerminal(int(syscall.Stdin)) }
)

var pswCache = make(map[common.Address]string)

// GetPassword prompts on the terminal until a password is read
func GetPassword(msg string) ([]byte, error) {
	if !isTerminal() {
		return nil, ErrNoTerminal
	}
	for {
		fmt.Fprintln(os.Stderr, msg)
		fmt.Fprint(os.Stderr, "> ")
		password, err := terminal.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		if err == nil {
			return password, nil
		}
		fmt.Fprintf(os.Stderr, "invalid input: %s\n", err)
	}
}

// PasswordFor resolves the unlock password of account: the explicit value
// first (an empty string is a valid password), then the KEYSTORE_PASSWORD
// environment variable, then an interactive prompt.
func PasswordFor(account common.Address, explicit *string) (string, error) {
	if explicit != nil {
		return *explicit, nil
	}
	if pswd, ok := pswCache[account]; ok {
		return pswd, nil
	}
	pswd := os.Getenv(EnvPassword)
	if pswd == "" {
		input, err := prompt(fmt.Sprintf("Enter password for account %s:", account.Hex()))
		if err != nil {
			return "", err
		}
		pswd = string(input)
	}
	pswCache[account] = pswd
	return pswd, nil
}
