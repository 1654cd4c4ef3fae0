package wallet

import (
	"crypto/ecdsa"
	"crypto/sha512"
	"errors"
	"strings"

	"github.com/cosmos/go-bip39"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/xdg-go/pbkdf2"
)

const (
	mnemonicSaltPrefix = "mnemonic"
	seedIterations     = 2048
	seedLengthBytes    = 64
	privateKeyLenBytes = 32
)

var (
	errInvalidMnemonic   = errors.New("invalid mnemonic")
	errInvalidPrivateKey = errors.New("invalid private key")
)

type feederWallet struct {
	privateKey *ecdsa.PrivateKey
	address    common.Address
}

// NewWalletFromMnemonic derives a secp256k1 wallet from a BIP-39 mnemonic.
// The seed derivation follows the BIP-39 scheme: PBKDF2-SHA512 over the
// mnemonic with 2048 iterations
func NewWalletFromMnemonic(mnemonic string, password string) (*feederWallet, error) {
	mnemonic = strings.TrimSpace(mnemonic)
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, errInvalidMnemonic
	}

	seed := pbkdf2.Key([]byte(mnemonic), []byte(mnemonicSaltPrefix+password), seedIterations, seedLengthBytes, sha512.New)

	privateKey, err := crypto.ToECDSA(seed[:privateKeyLenBytes])
	if err != nil {
		return nil, err
	}

	return newFeederWallet(privateKey), nil
}

// NewWalletFromHexKey creates a wallet from a hex-encoded secp256k1 private key
func NewWalletFromHexKey(hexKey string) (*feederWallet, error) {
	hexKey = strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	privateKey, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, errInvalidPrivateKey
	}

	return newFeederWallet(privateKey), nil
}

func newFeederWallet(privateKey *ecdsa.PrivateKey) *feederWallet {
	return &feederWallet{
		privateKey: privateKey,
		address:    crypto.PubkeyToAddress(privateKey.PublicKey),
	}
}

// PublicKey returns the uncompressed public key bytes
func (wallet *feederWallet) PublicKey() []byte {
	return crypto.FromECDSAPub(&wallet.privateKey.PublicKey)
}

// Address returns the EVM address of the wallet
func (wallet *feederWallet) Address() common.Address {
	return wallet.address
}

// Sign produces a 65-byte [R || S || V] signature over the provided 32-byte digest
func (wallet *feederWallet) Sign(digest []byte) ([]byte, error) {
	return crypto.Sign(digest, wallet.privateKey)
}

// IsInterfaceNil returns true if there is no value under the interface
func (wallet *feederWallet) IsInterfaceNil() bool {
	return wallet == nil
}
