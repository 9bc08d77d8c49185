package main

import (
	"os"
	"salon/config"
	"salon/helper"
	"salon/shared/logger"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Interface("actions", helper.Actions()).Msg("Migration action is required")
	}

	cfg := config.Get()
	action := helper.Action(os.Args[1])

	if err := helper.Run(cfg, action); err != nil {
		log.Fatal().Err(err).Str("action", string(action)).Interface("actions", helper.Actions()).Msg("Migration failed")
	}
}
