// Copyright (c) KolibroidAmy 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the entry point for the prettycat command-line application.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/KolibroidAmy/prettycat/cmd"
	"github.com/KolibroidAmy/prettycat/internal/ctxlog"
	"github.com/KolibroidAmy/prettycat/internal/signalbroker"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel)

	err := cmd.RootCmd.Run(ctx, os.Args)
	if err != nil {
		ctxlog.Logger(ctx).Error("command failed", "error", err)

		var coder cli.ExitCoder
		if errors.As(err, &coder) {
			os.Exit(coder.ExitCode())
		}

		os.Exit(1)
	}

	os.Exit(0)
}
