package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"

	"claimsweeper/pkg"
	"claimsweeper/pkg/notifier"
	"claimsweeper/pkg/stellar"
	"claimsweeper/pkg/sweeper"
)

func main() {
	var sweeperCfg pkg.SweeperConfig

	flag.StringVar(&sweeperCfg.AccountsFile, "accounts", "accounts.json", "accounts config file")
	flag.StringVar(&sweeperCfg.StellarNetwork, "network", "testnet", "stellar network (testnet or production)")
	flag.StringVar(&sweeperCfg.StellarHorizonUrl, "horizon", "", "horizon url override")
	debug := flag.Bool("debug", false, "enable debug logging")

	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// telegram credentials may live in a .env file
	godotenv.Load()

	accounts, err := pkg.LoadAccounts(sweeperCfg.AccountsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load accounts")
	}

	client, err := stellar.NewClient(&sweeperCfg.StellarConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create horizon client")
	}

	var notifierCfg notifier.Config
	if err := envconfig.Process("telegram", &notifierCfg); err != nil {
		log.Warn().Err(err).Msg("failed to read telegram config, notifications disabled")
	}

	s := sweeper.New(client, notifier.NewTelegram(notifierCfg), accounts)
	if err := s.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("sweeper stopped")
	}
}
