// Package main provides the housebook CLI, a desktop record keeper for
// real-estate agents: contacts, property listings, and the
// relationships between them.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fairmont-labs/housebook/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// exitCode maps user-recoverable failures to exitUserError and
// everything else to exitSysError.
func exitCode(err error) int {
	var cmdErr *types.CommandError
	var dupErr *types.DuplicateError
	var nfErr *types.NotFoundError
	switch {
	case errors.As(err, &cmdErr),
		errors.As(err, &dupErr),
		errors.As(err, &nfErr),
		errors.Is(err, types.ErrInvalidID),
		errors.Is(err, types.ErrInvalidRole),
		errors.Is(err, types.ErrInvalidName),
		errors.Is(err, types.ErrInvalidPhone),
		errors.Is(err, types.ErrInvalidPrice),
		errors.Is(err, types.ErrInvalidBudget),
		errors.Is(err, types.ErrBudgetRange),
		errors.Is(err, types.ErrInvalidStatus):
		return exitUserError
	default:
		return exitSysError
	}
}
