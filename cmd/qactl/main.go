// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-ask-me/internal/cli"
	"github.com/MKhiriev/go-ask-me/internal/config"
	"github.com/MKhiriev/go-ask-me/internal/logger"
	"github.com/MKhiriev/go-ask-me/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewConsoleLogger("qactl", os.Stderr, zerolog.WarnLevel)

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	rootCmd := cli.NewRootCmd(cli.NewEnv(cfg, log, os.Stdout), buildInfo.BuildVersion())
	if err = rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.New(color.FgRed).Sprint("error:"), err)
		os.Exit(1)
	}
}
