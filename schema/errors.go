package schema

import (
	"errors"
	"fmt"
)

// ErrCallerContract marks inputs that violate the documented preconditions of a
// plot pipeline. These are programming errors on the caller's side.
var ErrCallerContract = errors.New("caller contract violation")

// ErrRender marks failures reported by a rendering backend.
var ErrRender = errors.New("render failed")

// ContractError describes one caller-contract violation.
type ContractError struct {
	Op     string // Pipeline step that rejected the input
	ID     string // Title of the offending benchmark, if any
	Reason string
}

func (e *ContractError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.ID, e.Reason)
}

// Is lets errors.Is match ErrCallerContract.
func (e *ContractError) Is(target error) bool {
	return target == ErrCallerContract
}

// NewContractError builds a ContractError with a formatted reason.
func NewContractError(op, id, format string, args ...any) *ContractError {
	return &ContractError{Op: op, ID: id, Reason: fmt.Sprintf(format, args...)}
}
