// GameHunt
// Copyright (c) 2026 The GameHunt Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of GameHunt.
//
// GameHunt is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GameHunt is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GameHunt.  If not, see <http://www.gnu.org/licenses/>.

// GameHunt is a terminal browser for the RAWG video game catalog:
// genre filters, a popular games row, incremental search and a detail
// view with screenshots and a share action.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mobileni/gamehunt/pkg/catalog/repository"
	"github.com/mobileni/gamehunt/pkg/catalog/usecase"
	"github.com/mobileni/gamehunt/pkg/config"
	"github.com/mobileni/gamehunt/pkg/rawg"
	"github.com/mobileni/gamehunt/pkg/ui/tui"
	"github.com/mobileni/gamehunt/pkg/viewmodel"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

var appVersion = "dev"

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPathFlag := flag.String("config", "", "path to config file")
	debug := flag.Bool("debug", false, "enable debug logging")
	apiKey := flag.String("api-key", "", "RAWG API key (overrides config)")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("gamehunt", appVersion)
		return nil
	}

	setupLogging(*debug)

	cfgPath := *cfgPathFlag
	if cfgPath == "" {
		var err error
		cfgPath, err = config.DefaultConfigPath()
		if err != nil {
			return err
		}
	}

	defaults := config.BaseDefaults
	if *apiKey != "" {
		defaults.API.Key = *apiKey
	}

	cfg, err := config.NewConfig(afero.NewOsFs(), cfgPath, defaults)
	if err != nil {
		return err
	}
	if *apiKey != "" {
		cfg.SetAPIKey(*apiKey)
	}
	if cfg.DebugLogging() && !*debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := rawg.NewClient(cfg)
	genreRepo := repository.NewGenreRepo(client)
	gameRepo := repository.NewGameRepo(client)
	detailRepo := repository.NewGameDetailRepo(client)

	runner := viewmodel.GoRunner(ctx)
	home := viewmodel.NewHome(
		usecase.NewGetGenres(genreRepo),
		usecase.NewGetPopularGames(gameRepo),
		usecase.NewSearchGames(gameRepo),
		runner,
	)
	detail := viewmodel.NewDetail(
		usecase.NewGetGameDetail(detailRepo),
		usecase.NewGetGameScreenshots(detailRepo),
		runner,
	)

	log.Info().Str("version", appVersion).Msg("starting GameHunt")
	return tui.Run(ctx, home, detail)
}

func setupLogging(debug bool) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	// The terminal is owned by the UI; keep logs on stderr where they
	// can be redirected to a file.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
