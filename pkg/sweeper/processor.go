package sweeper

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	hProtocol "github.com/stellar/go/protocols/horizon"
	"github.com/stellar/go/txnbuild"

	"claimsweeper/pkg"
	"claimsweeper/pkg/stellar"
	"claimsweeper/pkg/wallet"
)

// ProcessAccount claims and forwards every pending claimable balance for
// one account. A validation or derivation failure aborts this account
// for the current cycle, a failed claim only skips that balance.
func (s *Sweeper) ProcessAccount(ctx context.Context, account pkg.AccountConfig) error {
	if err := account.Validate(); err != nil {
		return errors.Wrap(err, "invalid account config")
	}

	main, err := wallet.FromMnemonic(account.MainMnemonic)
	if err != nil {
		return errors.Wrap(err, "failed to derive main wallet")
	}
	sponsor, err := wallet.FromMnemonic(account.SponsorMnemonic)
	if err != nil {
		return errors.Wrap(err, "failed to derive sponsor wallet")
	}

	balances, err := s.ledger.PendingClaimableBalances(main.Address(), maxBalancesPerSweep)
	if err != nil {
		return errors.Wrap(err, "failed to list claimable balances")
	}
	if len(balances) == 0 {
		log.Debug().Str("account", account.DisplayName()).Msg("no claimable balances")
		return nil
	}

	for _, balance := range balances {
		if ctx.Err() != nil {
			return nil
		}

		log.Info().
			Str("account", account.DisplayName()).
			Str("balance", balance.BalanceID).
			Str("amount", balance.Amount).
			Msg("found claimable balance")

		hash, err := s.claimAndForward(main, sponsor, account.ReceiverAddress, balance)
		if err != nil {
			s.logClaimFailure(account, balance, err)
			continue
		}

		log.Info().
			Str("account", account.DisplayName()).
			Str("hash", hash).
			Msg("claim submitted to the stellar network")
		s.notifier.Notify(fmt.Sprintf("✅ *%s* claimed %s XLM\n[%s](%s)",
			account.DisplayName(), balance.Amount, hash, s.ledger.ExplorerTxURL(hash)))
	}

	return nil
}

// claimAndForward builds, signs and submits one fee bumped claim
// transaction and returns its hash. Account state and base fee are
// fetched fresh per balance so sequence numbers stay correct across
// multiple submissions in the same cycle.
func (s *Sweeper) claimAndForward(main, sponsor *wallet.Wallet, receiver string, balance hProtocol.ClaimableBalance) (string, error) {
	sourceAccount, err := s.ledger.AccountDetail(main.Address())
	if err != nil {
		return "", errors.Wrap(err, "failed to load main account")
	}

	inner, err := txnbuild.NewTransaction(txnbuild.TransactionParams{
		SourceAccount:        &sourceAccount,
		IncrementSequenceNum: true,
		Operations: []txnbuild.Operation{
			&txnbuild.ClaimClaimableBalance{
				BalanceID: balance.BalanceID,
			},
			&txnbuild.Payment{
				Destination: receiver,
				Amount:      balance.Amount,
				Asset:       txnbuild.NativeAsset{},
			},
		},
		BaseFee:    0, // the fee bump layer pays
		Timebounds: txnbuild.NewTimeout(txTimeout),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to build transaction")
	}

	inner, err = inner.Sign(s.ledger.NetworkPassphrase(), main.Keypair())
	if err != nil {
		return "", errors.Wrap(err, "failed to sign transaction with main keypair")
	}

	baseFee, err := s.ledger.BaseFee()
	if err != nil {
		return "", errors.Wrap(err, "failed to fetch base fee")
	}

	feeBump, err := txnbuild.NewFeeBumpTransaction(txnbuild.FeeBumpTransactionParams{
		Inner:      inner,
		FeeAccount: sponsor.Address(),
		BaseFee:    baseFee * feeBumpMultiplier,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to build fee bump transaction")
	}

	feeBump, err = feeBump.Sign(s.ledger.NetworkPassphrase(), sponsor.Keypair())
	if err != nil {
		return "", errors.Wrap(err, "failed to sign fee bump transaction with sponsor keypair")
	}

	result, err := s.ledger.SubmitFeeBump(feeBump)
	if err != nil {
		return "", err
	}

	return result.Hash, nil
}

// logClaimFailure logs a failed claim, rate limiting gets a distinct
// warning since the next cycle naturally retries
func (s *Sweeper) logClaimFailure(account pkg.AccountConfig, balance hProtocol.ClaimableBalance, err error) {
	var submitErr *stellar.Error
	if errors.As(err, &submitErr) && submitErr.Kind == stellar.ErrRateLimited {
		log.Warn().
			Str("account", account.DisplayName()).
			Str("balance", balance.BalanceID).
			Msg("rate limited by horizon, balance is picked up next cycle")
		return
	}

	log.Error().Err(err).
		Str("account", account.DisplayName()).
		Str("balance", balance.BalanceID).
		Msg("failed to claim balance")
}
