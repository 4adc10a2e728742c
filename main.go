package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", defaultConfigFileName, "config file path.")
	flag.Parse()

	// report goes to stdout, logs stay on stderr
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := initConfig(configPath); err != nil {
		log.Info().Str("config", configPath).Msg("no config file, using defaults")
	}
	if configGetDebug() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	n := configGetIterations()
	log.Info().Msgf("running 6 scenarios, %s lookups each", humanize.Comma(int64(n)))

	runner := runAll(n)
	runner.Report(os.Stdout)

	fmt.Println()
	printIdentityTokens(os.Stdout)

	if configGetMemStats() {
		fmt.Println()
		printMemStats(os.Stdout)
	}
}
