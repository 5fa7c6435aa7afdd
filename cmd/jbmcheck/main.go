// Copyright 2025 go-jbm Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// jbmcheck measures the ULP error of the go-jbm elementary functions against
// the standard library and, optionally, their throughput.
//
// Usage:
//
//	jbmcheck [flags] n [nthreads]
//
// n is the number of random samples drawn per function from its domain and
// nthreads the size of the worker pool (GOMAXPROCS when omitted or 0).
//
// Flags:
//
//	-seed      random seed (default 1)
//	-func      comma-separated list of functions to check (default all)
//	-textfile  write Prometheus metrics in text format to this file
//	-bench     also time each function and its standard library counterpart
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	samples  int
	threads  int
	seed     uint64
	funcs    []string
	textfile string
	bench    bool
}

var errUsage = errors.New("usage: jbmcheck [flags] n [nthreads]")

func parseArgs(args []string, output io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("jbmcheck", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Uint64Var(&cfg.seed, "seed", 1, "Random seed for the samples")
	funcs := fs.String("func", "", "Comma-separated functions to check (default all)")
	fs.StringVar(&cfg.textfile, "textfile", "", "Write Prometheus metrics to this file")
	fs.BoolVar(&cfg.bench, "bench", false, "Time each function against the standard library")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	pos := fs.Args()
	if len(pos) < 1 || len(pos) > 2 {
		return cfg, errUsage
	}
	n, err := strconv.Atoi(pos[0])
	if err != nil || n <= 0 {
		return cfg, fmt.Errorf("n must be a positive integer, got %q", pos[0])
	}
	cfg.samples = n
	if len(pos) == 2 {
		t, err := strconv.Atoi(pos[1])
		if err != nil || t < 0 {
			return cfg, fmt.Errorf("nthreads must be a non-negative integer, got %q", pos[1])
		}
		cfg.threads = t
	}
	if *funcs != "" {
		for _, name := range strings.Split(*funcs, ",") {
			if name = strings.TrimSpace(name); name != "" {
				cfg.funcs = append(cfg.funcs, name)
			}
		}
	}
	return cfg, nil
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid arguments")
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("Check failed")
	}
}
