package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/avlae/solgrid/cmd/solgrid"
	"github.com/avlae/solgrid/logging"
	"gitlab.com/greyxor/slogor"
)

func main() {
	slog.SetDefault(slog.New(logging.ContextHandler{
		Handler: slogor.NewHandler(os.Stderr,
			slogor.SetLevel(slog.LevelInfo),
			slogor.SetTimeFormat(time.DateTime)),
	}))

	solgrid.Execute()
}
