package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/strategy/internal/strategy/cmd"
	"laptudirm.com/x/strategy/internal/strategy/settings"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := strategy(); err != nil {
		logrus.Fatal(err)
	}
}

func strategy() error {
	config, err := settings.Load()
	if err != nil {
		return err
	}

	level, err := config.Level()
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
