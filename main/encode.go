package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/cancanxinxin/grl"
	"github.com/cancanxinxin/grl/internal/config"
	"github.com/cancanxinxin/grl/pkg/framelog"
)

// capture is the YAML input of the encode command.
type capture struct {
	Parameters *grl.Parameters `yaml:"parameters"`
	Frames     []grl.Frame     `yaml:"frames"`
}

func loadCapture(path string) (*capture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c capture
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse capture %s: %w", path, err)
	}
	return &c, nil
}

func runEncode(args []string) error {
	var configPath, in, out string
	fs := pflag.NewFlagSet("encode", pflag.ContinueOnError)
	fs.StringVar(&configPath, "config", "", "config file (default $"+config.EnvConfig+")")
	fs.StringVarP(&in, "in", "i", "", "YAML capture to encode")
	fs.StringVarP(&out, "out", "o", "", "frame log to write")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if in == "" || out == "" {
		return errors.New("encode: --in and --out are required")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.SlogLevel())

	c, err := loadCapture(in)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	pool := grl.NewPool(cfg.EncoderOptions(logger))
	var params []byte
	if c.Parameters != nil {
		enc := pool.Get()
		params, err = enc.EncodeParameters(c.Parameters)
		pool.Put(enc)
		if err != nil {
			return err
		}
	}
	frames, err := pool.EncodeFrames(ctx, c.Frames, cfg.Encoder.Workers)
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	w, err := framelog.NewWriter(bw, cfg.FrameLogOptions())
	if err != nil {
		return err
	}
	defer w.Close()

	if params != nil {
		if err := w.WriteParameters(params); err != nil {
			return err
		}
	}
	var raw int
	for _, buf := range frames {
		if err := w.WriteFrame(buf); err != nil {
			return err
		}
		raw += len(buf)
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	if err := f.Sync(); err != nil {
		return err
	}

	logger.Info("grl: wrote frame log",
		"path", out,
		"session", w.Meta().SessionID,
		"frames", len(frames),
		"parameters", params != nil,
		"raw_bytes", raw,
		"compression", w.Meta().Compression,
		"elapsed", time.Since(start))
	return nil
}
