package sweeper

import (
	"context"

	"github.com/rs/zerolog/log"
	hProtocol "github.com/stellar/go/protocols/horizon"
	"github.com/stellar/go/txnbuild"

	"claimsweeper/pkg"
)

const (
	// maxBalancesPerSweep caps how many claimable balances are handled
	// for one account in one cycle, the rest are picked up next cycle
	maxBalancesPerSweep = 10
	// feeBumpMultiplier is the safety margin over the network base fee,
	// to reduce rejection risk when fees fluctuate
	feeBumpMultiplier = 120
	// txTimeout bounds inner transaction validity, in seconds
	txTimeout = 60
)

// Ledger is the horizon surface the sweeper consumes. *stellar.Client
// implements it, tests substitute a fake.
type Ledger interface {
	PendingClaimableBalances(claimant string, limit int) ([]hProtocol.ClaimableBalance, error)
	AccountDetail(address string) (hProtocol.Account, error)
	BaseFee() (int64, error)
	SubmitFeeBump(tx *txnbuild.FeeBumpTransaction) (hProtocol.Transaction, error)
	NetworkPassphrase() string
	ExplorerTxURL(hash string) string
}

// Notifier delivers best effort operator messages
type Notifier interface {
	Notify(text string)
}

// Sweeper is a high level structure which polls the configured accounts
// for claimable balances and claims and forwards them, fees paid by
// each account's sponsor
type Sweeper struct {
	ledger   Ledger
	notifier Notifier
	accounts []pkg.AccountConfig
}

func New(ledger Ledger, notifier Notifier, accounts []pkg.AccountConfig) *Sweeper {
	return &Sweeper{
		ledger:   ledger,
		notifier: notifier,
		accounts: accounts,
	}
}

// Run sweeps all accounts in configuration order until ctx is cancelled.
// Accounts are processed strictly sequentially and a new cycle starts as
// soon as the previous one finishes. Per account failures are logged and
// never stop the loop.
func (s *Sweeper) Run(ctx context.Context) error {
	log.Info().Int("accounts", len(s.accounts)).Msg("starting sweeper...")

	for cycle := uint64(1); ; cycle++ {
		log.Debug().Uint64("cycle", cycle).Msg("starting sweep cycle")
		if err := s.sweep(ctx); err != nil {
			return err
		}
		log.Debug().Uint64("cycle", cycle).Msg("sweep cycle finished")

		if ctx.Err() != nil {
			return nil
		}
	}
}

// sweep runs one full cycle over all accounts
func (s *Sweeper) sweep(ctx context.Context) error {
	for _, account := range s.accounts {
		if ctx.Err() != nil {
			return nil
		}
		if err := s.ProcessAccount(ctx, account); err != nil {
			log.Error().Err(err).Str("account", account.DisplayName()).Msg("account sweep failed")
		}
	}
	return nil
}
