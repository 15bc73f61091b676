// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/katalvlaran/strassen/config"
	"github.com/katalvlaran/strassen/logger"
	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/ring"
	"github.com/katalvlaran/strassen/strassen"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is the release of the command.
const Version = "0.1.0"

// app is the state shared by the subcommands after flag parsing.
type app struct {
	cfgFile string
	debug   bool
	verify  bool
	print   bool

	modulus uint64
	order   int
	seed    int64

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "strassen",
		Short:         "Strassen matrix multiplication over Z/pZ",
		Long:          "strassen multiplies two random square matrices over the ring of integers modulo p,\nsplitting one level of Strassen's recursion across a coordinator and six workers.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "path to a YAML config file")
	pf.BoolVar(&a.debug, "debug", false, "enable debug logging")
	pf.Uint64Var(&a.modulus, "modulus", 0, "ring modulus p (overrides ring.modulus)")
	pf.IntVar(&a.order, "order", 0, "matrix order, a power of two (overrides matrix.order)")
	pf.Int64Var(&a.seed, "seed", 0, "operand generator seed (overrides matrix.seed)")
	pf.BoolVar(&a.verify, "verify", false, "check the product against the definitional O(n³) product")
	pf.BoolVar(&a.print, "print", false, "print operands and product")

	root.CompletionOptions.DisableDefaultCmd = true
	root.AddCommand(
		newRunCmd(a),
		newSeqCmd(a),
		newCoordinatorCmd(a),
		newWorkerCmd(a),
	)

	return root
}

// setup loads the configuration with flag overrides and installs the logger.
func (a *app) setup(cmd *cobra.Command) error {
	loader := config.NewLoader().WithConfigPath(a.cfgFile)
	flags := cmd.Flags()
	if flags.Changed("modulus") {
		loader.WithOverride("ring.modulus", strconv.FormatUint(a.modulus, 10))
	}
	if flags.Changed("order") {
		loader.WithOverride("matrix.order", strconv.Itoa(a.order))
	}
	if flags.Changed("seed") {
		loader.WithOverride("matrix.seed", strconv.FormatInt(a.seed, 10))
	}
	if a.debug {
		loader.WithOverride("log.level", "debug")
	}
	for key, flag := range map[string]string{
		"cluster.address":          "address",
		"protocol.collect_timeout": "collect-timeout",
	} {
		if f := flags.Lookup(flag); f != nil && f.Changed {
			loader.WithOverride(key, f.Value.String())
		}
	}

	cfg, err := loader.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger.Init(cfg.Log.Logger())
	a.log = logger.L()

	return nil
}

func (a *app) ring() ring.Ring {
	return ring.MustNew(a.cfg.Ring.Modulus) // validated by config
}

// operands generates the configured operand pair.
func (a *app) operands() (*matrix.Dense, *matrix.Dense, error) {
	return matrix.RandomPair(a.ring(), a.cfg.Matrix.Order, a.cfg.Matrix.Seed)
}

// report prints and verifies the product as the flags request.
func (a *app) report(w io.Writer, x, y, product *matrix.Dense, elapsed time.Duration) error {
	if a.print {
		fmt.Fprintf(w, "A =\n%v\nB =\n%v\n", x, y)
		fmt.Fprintf(w, "A × B over %v =\n%v", product.Ring(), product)
	}
	fmt.Fprintf(w, "order %d over %v: %d levels, %s\n",
		product.Order(), product.Ring(), strassen.Depth(product.Order()), elapsed.Round(time.Microsecond))

	if !a.verify {
		return nil
	}
	want, err := matrix.Product(x, y)
	if err != nil {
		return err
	}
	if !want.Equal(product) {
		return fmt.Errorf("verification failed: product differs from the definitional product")
	}
	fmt.Fprintln(w, "verified against the definitional product")

	return nil
}
