package main

import (
	"log/slog"
	"os"

	"github.com/dasdy/mammajamma/cmd/mammajamma"
	"github.com/dasdy/mammajamma/logging"
)

func main() {
	slog.SetDefault(slog.New(logging.NewHandler(os.Stderr, slog.LevelDebug)))

	mammajamma.Execute()
}
