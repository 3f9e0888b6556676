package stellar

import (
	"github.com/pkg/errors"
	"github.com/stellar/go/clients/horizonclient"
	"github.com/stellar/go/network"
	hProtocol "github.com/stellar/go/protocols/horizon"
	"github.com/stellar/go/txnbuild"

	"claimsweeper/pkg"
)

// Client wraps a horizon client for one configured network. It holds no
// per-account state and is reused across all accounts and sweep cycles.
type Client struct {
	horizon *horizonclient.Client
	config  *pkg.StellarConfig
}

func NewClient(config *pkg.StellarConfig) (*Client, error) {
	horizon, err := horizonClient(config)
	if err != nil {
		return nil, err
	}

	return &Client{
		horizon: horizon,
		config:  config,
	}, nil
}

func horizonClient(config *pkg.StellarConfig) (*horizonclient.Client, error) {
	if config.StellarHorizonUrl != "" {
		return &horizonclient.Client{HorizonURL: config.StellarHorizonUrl}, nil
	}

	switch config.StellarNetwork {
	case "testnet":
		return horizonclient.DefaultTestNetClient, nil
	case "production":
		return horizonclient.DefaultPublicNetClient, nil
	default:
		return nil, errors.New("network is not supported")
	}
}

// PendingClaimableBalances lists claimable balances the given account is
// an eligible claimant for, capped to limit records.
func (c *Client) PendingClaimableBalances(claimant string, limit int) ([]hProtocol.ClaimableBalance, error) {
	page, err := c.horizon.ClaimableBalances(horizonclient.ClaimableBalanceRequest{
		Claimant: claimant,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list claimable balances for %s", claimant)
	}

	records := page.Embedded.Records
	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// AccountDetail loads the current on chain state of an account
func (c *Client) AccountDetail(address string) (hProtocol.Account, error) {
	account, err := c.horizon.AccountDetail(horizonclient.AccountRequest{AccountID: address})
	if err != nil {
		return hProtocol.Account{}, errors.Wrapf(err, "failed to get account details for account: %s", address)
	}
	return account, nil
}

// BaseFee fetches the base fee charged for the last ledger
func (c *Client) BaseFee() (int64, error) {
	feeStats, err := c.horizon.FeeStats()
	if err != nil {
		return 0, errors.Wrap(err, "failed to fetch fee stats")
	}
	return feeStats.LastLedgerBaseFee, nil
}

// SubmitFeeBump submits a signed fee bump envelope to the network.
// Failures are returned as a tagged *Error so callers can match on the
// kind instead of probing horizon problem fields.
func (c *Client) SubmitFeeBump(tx *txnbuild.FeeBumpTransaction) (hProtocol.Transaction, error) {
	result, err := c.horizon.SubmitFeeBumpTransaction(tx)
	if err != nil {
		return hProtocol.Transaction{}, Classify(err)
	}
	return result, nil
}

// NetworkPassphrase returns the passphrase transactions must be signed
// with on the configured network
func (c *Client) NetworkPassphrase() string {
	switch c.config.StellarNetwork {
	case "testnet":
		return network.TestNetworkPassphrase
	case "production":
		return network.PublicNetworkPassphrase
	default:
		return network.TestNetworkPassphrase
	}
}

// ExplorerTxURL builds a stellar.expert link for a submitted transaction
func (c *Client) ExplorerTxURL(hash string) string {
	if c.config.StellarNetwork == "production" {
		return "https://stellar.expert/explorer/public/tx/" + hash
	}
	return "https://stellar.expert/explorer/testnet/tx/" + hash
}
