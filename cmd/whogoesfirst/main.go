// Package main starts the Who Goes First card site.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	whogoesfirstcmd "github.com/louisbranch/whogoesfirst/internal/cmd/whogoesfirst"
	"github.com/louisbranch/whogoesfirst/internal/platform/config"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		config.Exitf("load .env: %v", err)
	}
	cfg, err := whogoesfirstcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := whogoesfirstcmd.Run(ctx, cfg); err != nil {
		config.Exitf("failed to serve: %v", err)
	}
}
