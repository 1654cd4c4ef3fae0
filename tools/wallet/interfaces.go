package wallet

import "github.com/ethereum/go-ethereum/common"

// Wallet defines the signing component used when submitting exchange actions
type Wallet interface {
	PublicKey() []byte
	Address() common.Address
	Sign(digest []byte) ([]byte, error)
	IsInterfaceNil() bool
}
