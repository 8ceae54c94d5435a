package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/panyam/forest/cmd/forest/commands"
	"github.com/panyam/forest/runtime"
)

func main() {
	envfile := ".env"
	if os.Getenv("FOREST_ENV") == "dev" {
		envfile = ".env.dev"
	}
	if err := godotenv.Load(envfile); err != nil {
		runtime.Debug("no env file loaded from %s: %v", envfile, err)
	} else {
		runtime.ApplyLogLevelFromEnv()
	}
	commands.Execute()
}
