// Command migrate applies, rolls back or reports the embedded goose migrations.
//
//	go run ./cmd/migrate up|down|status
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"schooladmin_backend/internals/configs"
	database "schooladmin_backend/internals/databases"
	"schooladmin_backend/internals/logging"
)

func main() {
	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	configs.LoadEnv()
	cfg, err := configs.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	lg, err := logging.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer lg.Closer()

	db, err := database.ConnectDB(cfg, lg.Base)
	if err != nil {
		lg.Base.Fatal("db connect failed", zap.Error(err))
	}
	defer database.Close(db)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	switch cmd {
	case "up":
		err = database.Migrate(ctx, db)
	case "down":
		err = database.Rollback(ctx, db)
	case "status":
		err = database.Status(ctx, db)
	default:
		err = fmt.Errorf("unknown command %q (want up, down or status)", cmd)
	}
	if err != nil {
		lg.Base.Fatal("migrate", zap.String("cmd", cmd), zap.Error(err))
	}
	lg.Base.Info("migrate done", zap.String("cmd", cmd))
}
