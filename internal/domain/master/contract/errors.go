package contract

import "errors"

var (
	ErrContractNotFound = errors.New("contract type not found")
)
