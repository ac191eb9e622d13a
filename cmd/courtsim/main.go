package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/RamanShrikant/basketball-manager-sub000/internal/config"
	"github.com/RamanShrikant/basketball-manager-sub000/internal/logging"
	"github.com/RamanShrikant/basketball-manager-sub000/internal/simulator"
	"github.com/RamanShrikant/basketball-manager-sub000/internal/types"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logging.Init(cfg.LogLevel, cfg.IsDevelopment())

	league, err := loadLeague(cfg.LeagueFile)
	if err != nil {
		log.WithError(err).Fatal("Failed to load league file")
	}

	home := findTeam(league, cfg.HomeTeam)
	away := findTeam(league, cfg.AwayTeam)
	if home == nil || away == nil {
		log.WithFields(logrus.Fields{
			"home_team": cfg.HomeTeam,
			"away_team": cfg.AwayTeam,
		}).Fatal("HOME_TEAM and AWAY_TEAM must name teams in the league file")
	}

	engine := simulator.New(simulator.Options{Seed: cfg.Seed, Logger: log})

	var output any
	if cfg.BestOf > 1 {
		output, err = engine.SimulateSeries(home, away, *league, cfg.BestOf)
	} else {
		output, err = engine.SimulateGame(home, away, *league)
	}
	if err != nil {
		log.WithError(err).Fatal("Simulation rejected")
	}

	encoded, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		log.WithError(err).Fatal("Failed to encode result")
	}
	fmt.Println(string(encoded))
}

func loadLeague(path string) (*types.League, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var league types.League
	if err := json.Unmarshal(data, &league); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &league, nil
}

func findTeam(league *types.League, name string) *types.Team {
	for i := range league.Teams {
		if league.Teams[i].Name == name {
			return &league.Teams[i]
		}
	}
	return nil
}
