package wallet

import (
	"github.com/pkg/errors"
	"github.com/stellar/go/exp/crypto/derivation"
	"github.com/stellar/go/keypair"
	"github.com/tyler-smith/go-bip39"
)

// ErrInvalidMnemonic is returned if a seed phrase fails BIP-39 wordlist
// or checksum validation
var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// Wallet is a stellar keypair derived from a BIP-39 seed phrase at the
// primary SEP-0005 account path (m/44'/148'/0'). Derivation is
// deterministic, the same phrase always yields the same keypair.
type Wallet struct {
	kp *keypair.Full
}

// FromMnemonic derives a wallet from a seed phrase. No passphrase is
// applied to the BIP-39 seed.
func FromMnemonic(mnemonic string) (*Wallet, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}

	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return nil, ErrInvalidMnemonic
	}

	key, err := derivation.DeriveForPath(derivation.StellarPrimaryAccountPath, seed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive account key")
	}

	kp, err := keypair.FromRawSeed(key.RawSeed())
	if err != nil {
		return nil, errors.Wrap(err, "failed to build keypair from raw seed")
	}

	return &Wallet{kp: kp}, nil
}

// Address returns the public key of the wallet
func (w *Wallet) Address() string {
	return w.kp.Address()
}

// Seed returns the secret key of the wallet
func (w *Wallet) Seed() string {
	return w.kp.Seed()
}

func (w *Wallet) Keypair() *keypair.Full {
	return w.kp
}
