package pkg

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type SweeperConfig struct {
	// path to the accounts file
	AccountsFile string
	StellarConfig
}

type StellarConfig struct {
	// network for the stellar config
	StellarNetwork string
	// optional horizon url override
	StellarHorizonUrl string
}

// AccountConfig is one swept account: the account whose claimable
// balances are claimed, the sponsor paying the fees and the receiver
// the claimed funds are forwarded to.
type AccountConfig struct {
	Name            string `mapstructure:"name"`
	MainMnemonic    string `mapstructure:"mainMnemonic"`
	SponsorMnemonic string `mapstructure:"sponsorMnemonic"`
	ReceiverAddress string `mapstructure:"receiverAddress"`
}

// Validate checks the required fields. Name is optional, it is only
// used for display.
func (a AccountConfig) Validate() error {
	if a.MainMnemonic == "" {
		return errors.New("mainMnemonic is not set")
	}
	if a.SponsorMnemonic == "" {
		return errors.New("sponsorMnemonic is not set")
	}
	if a.ReceiverAddress == "" {
		return errors.New("receiverAddress is not set")
	}
	return nil
}

// DisplayName returns the configured name, or an abbreviated receiver
// address when no name is set.
func (a AccountConfig) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	if len(a.ReceiverAddress) > 10 {
		return a.ReceiverAddress[:5] + ".." + a.ReceiverAddress[len(a.ReceiverAddress)-5:]
	}
	return a.ReceiverAddress
}

// LoadAccounts reads the accounts file. A missing, unparsable or empty
// file is an error, the caller is expected to treat it as fatal.
func LoadAccounts(path string) ([]AccountConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read accounts file %s", path)
	}

	var accounts []AccountConfig
	if err := v.UnmarshalKey("accounts", &accounts); err != nil {
		return nil, errors.Wrapf(err, "failed to parse accounts file %s", path)
	}
	if len(accounts) == 0 {
		return nil, errors.New("no accounts configured")
	}

	return accounts, nil
}
