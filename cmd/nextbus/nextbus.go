package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/travigo/nextbus/pkg/nextbus"
	"github.com/travigo/nextbus/pkg/util"

	_ "time/tzdata"
)

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := nextbus.Run(ctx, os.Args, os.Stdout, os.Stderr, util.GetEnvironmentVariables())

	stop()
	os.Exit(code)
}
