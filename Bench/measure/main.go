package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/g-m-twostay/prio-queues/Bench"
)

func parseSizes(s string) ([]uint, error) {
	var r []uint
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f == "" {
			continue
		}
		v, err := strconv.ParseUint(f, 10, 0)
		if err != nil {
			return nil, fmt.Errorf("bad size %q: %w", f, err)
		}
		r = append(r, uint(v))
	}
	return r, nil
}

func main() {
	cfg := Bench.DefaultConfig()
	var sizes string
	{
		ds := make([]string, len(cfg.Sizes))
		for i, v := range cfg.Sizes {
			ds[i] = strconv.FormatUint(uint64(v), 10)
		}
		sizes = strings.Join(ds, ",")
	}
	flag.StringVar(&sizes, "sizes", sizes, "comma separated dataset sizes")
	flag.IntVar(&cfg.MinPrio, "min", cfg.MinPrio, "smallest priority")
	flag.IntVar(&cfg.MaxPrio, "max", cfg.MaxPrio, "largest priority")
	flag.UintVar(&cfg.Reps, "reps", cfg.Reps, "repetitions averaged for size and findMax")
	flag.UintVar(&cfg.ModifyOps, "modify", cfg.ModifyOps, "modifyKey calls averaged per row")
	flag.UintVar(&cfg.Rounds, "rounds", cfg.Rounds, "rows written per size on the same dataset")
	flag.StringVar(&cfg.Dir, "dir", cfg.Dir, "directory for the result files")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	flag.Parse()

	var err error
	if cfg.Sizes, err = parseSizes(sizes); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	h := Bench.New(cfg)
	backends := Bench.DefaultBackends()
	if err = h.Run(os.Stdout, backends...); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, b := range backends {
		fmt.Printf("%s -> %s\n", b.Name, Bench.FileName(cfg.Dir, b.Name))
		for _, r := range h.Rows(b.Name) {
			fmt.Println(" ", r.CSV())
		}
	}
}
