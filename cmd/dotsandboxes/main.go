package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/HuXin0817/dots-and-boxes-engine/internal/config"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/model"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/pprof"
	"github.com/zeromicro/go-zero/core/logx"
)

var (
	configFile = flag.String("f", "etc/dotsandboxes.yaml", "the config file")
	boardSize  = flag.Int("n", 0, "board size in dots per side, overrides the config file")
	color      = flag.String("color", "", "ON or OFF, overrides the config file")
	output     = flag.String("o", "", "text or json, overrides the config file")
)

func main() {
	flag.Parse()

	c, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config %s: %v\n", *configFile, err)
		os.Exit(1)
	}
	if err := override(&c); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logx.MustSetup(c.Log)
	defer logx.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if c.Pprof.Enabled {
		go func() {
			if err := pprof.Serve(ctx, c.Pprof.Addr); err != nil {
				logx.Errorf("pprof server: %v", err)
			}
		}()
	}

	shell, err := NewShell(c, os.Stdout, os.Stderr)
	if err != nil {
		logx.Error(err)
		return
	}

	if err := shell.Run(ctx, os.Stdin); err != nil && ctx.Err() == nil {
		logx.Errorf("read commands: %v", err)
	}
	if err := shell.Close(); err != nil {
		logx.Error(err)
	}
}

func override(c *config.Config) error {
	if *boardSize != 0 {
		c.BoardSize = *boardSize
	}
	if *color != "" {
		on, ok := model.NewConfig(*color)
		if !ok {
			return fmt.Errorf("invalid -color %q, want ON or OFF", *color)
		}
		c.Color = bool(on)
	}
	if *output != "" {
		if *output != config.OutputText && *output != config.OutputJson {
			return fmt.Errorf("invalid -o %q, want %s or %s", *output, config.OutputText, config.OutputJson)
		}
		c.Output = *output
	}
	return c.Validate()
}
