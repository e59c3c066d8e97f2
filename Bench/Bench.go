// Package Bench times the operations of the Queues backends over random
// datasets and appends the averages to one CSV file per backend.
package Bench

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/g-m-twostay/prio-queues/Queues"
	"github.com/iancoleman/strcase"
)

// Header is the first line of every result file.
const Header = "Size,InsertTime,SizeTime,FindMaxTime,ExtractMaxTime,ModifyKeyTime"

// modifyBoost is added to an entry's priority by the ModifyKey measurement.
const modifyBoost = 1000

type Pair struct {
	Elem, Prio int
}

// Backend names a queue implementation. New must return an empty queue.
type Backend struct {
	Name string
	New  func() Queues.PriorityQueue[int, int]
}

func DefaultBackends() []Backend {
	return []Backend{
		{"BinaryHeap", func() Queues.PriorityQueue[int, int] { return Queues.NewHeapQueue[int, int](0) }},
		{"LinkedList", func() Queues.PriorityQueue[int, int] { return Queues.NewListQueue[int, int]() }},
	}
}

type Config struct {
	Sizes            []uint
	MinPrio, MaxPrio int
	Reps             uint // repetitions averaged for Size and FindMax
	ModifyOps        uint // ModifyKey calls averaged per row
	Rounds           uint // rows written per size, each on the same dataset
	Dir              string
	Seed             int64
}

func DefaultConfig() Config {
	return Config{
		Sizes:     []uint{5000, 8000, 10000, 16000, 20000, 40000, 60000, 100000, 200000, 500000, 1000000},
		MinPrio:   0,
		MaxPrio:   1000000,
		Reps:      1000,
		ModifyOps: 1000,
		Rounds:    1,
		Dir:       ".",
		Seed:      time.Now().UnixNano(),
	}
}

// Row holds the averages for one dataset size, all in microseconds.
// ExtractMax is per extracted entry and ModifyKey per call.
type Row struct {
	EntryCount                                   uint
	Insert, Size, FindMax, ExtractMax, ModifyKey float64
}

func (r Row) CSV() string {
	fs := []string{strconv.FormatUint(uint64(r.EntryCount), 10)}
	for _, v := range [...]float64{r.Insert, r.Size, r.FindMax, r.ExtractMax, r.ModifyKey} {
		fs = append(fs, strconv.FormatFloat(v, 'f', 4, 64))
	}
	return strings.Join(fs, ",")
}

// FileName of the result file for backend in dir, e.g. binary_heap_results.csv.
func FileName(dir, backend string) string {
	return filepath.Join(dir, strcase.ToSnake(backend)+"_results.csv")
}

// Dataset returns size pairs with elements 0..size-1 and priorities uniform in [min, max].
func Dataset(size uint, min, max int, rng *rand.Rand) ([]Pair, error) {
	if min > max {
		return nil, &Queues.InvalidRangeError{Min: int64(min), Max: int64(max)}
	}
	d := make([]Pair, size)
	for i := range d {
		d[i] = Pair{i, int(Queues.Uniform(rng, int64(min), int64(max)))}
	}
	return d, nil
}

// measureAvg runs f reps times and returns the mean duration in microseconds.
func measureAvg(f func(), reps uint) float64 {
	var sum time.Duration
	for range reps {
		start := time.Now()
		f()
		sum += time.Since(start)
	}
	return float64(sum.Nanoseconds()) / float64(reps) / 1000
}

func fill(q Queues.PriorityQueue[int, int], data []Pair) {
	for _, p := range data {
		q.Insert(p.Elem, p.Prio)
	}
}

// Measure times every operation of backend on data. Each operation group
// runs on its own fresh queue.
func Measure(backend Backend, data []Pair, reps, modifyOps uint, rng *rand.Rand) (Row, error) {
	if len(data) == 0 {
		return Row{}, errors.New("bench: empty dataset")
	}
	if reps == 0 || modifyOps == 0 {
		return Row{}, errors.New("bench: reps and modify ops must be positive")
	}
	r := Row{EntryCount: uint(len(data))}
	var err error
	var sz uint

	q := backend.New()
	r.Insert = measureAvg(func() { fill(q, data) }, 1)
	r.Size = measureAvg(func() { sz = q.Size() }, reps)
	if sz != uint(len(data)) {
		return r, fmt.Errorf("bench: %s holds %d entries after inserting %d", backend.Name, sz, len(data))
	}
	r.FindMax = measureAvg(func() {
		if _, e := q.FindMax(); e != nil {
			err = e
		}
	}, reps)

	q = backend.New()
	fill(q, data)
	r.ExtractMax = measureAvg(func() {
		for !q.Empty() {
			if _, e := q.ExtractMax(); e != nil {
				err = e
				return
			}
		}
	}, 1) / float64(len(data))

	q = backend.New()
	fill(q, data)
	r.ModifyKey = measureAvg(func() {
		for range modifyOps {
			p := data[rng.Intn(len(data))]
			if e := q.ModifyKey(p.Elem, p.Prio+modifyBoost); e != nil {
				err = e
			}
		}
	}, 1) / float64(modifyOps)

	if err != nil {
		return r, fmt.Errorf("bench: %s: %w", backend.Name, err)
	}
	return r, nil
}

// Harness runs Measure for every configured size and backend. All backends
// and rounds of a size see the same dataset.
type Harness struct {
	cfg  Config
	data *hashmap.Map[uint, []Pair]
	rows *haxmap.Map[string, []Row]
	rng  *rand.Rand
}

func New(cfg Config) *Harness {
	return &Harness{
		cfg:  cfg,
		data: hashmap.New[uint, []Pair](),
		rows: haxmap.New[string, []Row](),
		rng:  rand.New(rand.NewSource(cfg.Seed)),
	}
}

// dataset for size, generated on first use and kept until forget(size).
func (h *Harness) dataset(size uint) ([]Pair, error) {
	if d, ok := h.data.Get(size); ok {
		return d, nil
	}
	d, err := Dataset(size, h.cfg.MinPrio, h.cfg.MaxPrio, h.rng)
	if err != nil {
		return nil, err
	}
	h.data.Set(size, d)
	return d, nil
}

func (h *Harness) forget(size uint) {
	h.data.Del(size)
}

// Rows measured so far for the named backend, in the order they were written.
func (h *Harness) Rows(name string) []Row {
	r, _ := h.rows.Get(name)
	return r
}

func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintln(f, line); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (h *Harness) record(b Backend, data []Pair) error {
	row, err := Measure(b, data, h.cfg.Reps, h.cfg.ModifyOps, h.rng)
	if err != nil {
		return err
	}
	rs, _ := h.rows.Get(b.Name)
	h.rows.Set(b.Name, append(rs, row))
	return appendLine(FileName(h.cfg.Dir, b.Name), row.CSV())
}

// Run truncates each backend's result file to the header, then for every
// size and round measures the backends one after another on the same
// dataset and appends one row to each file. The dataset of a size is
// dropped once its rounds are done. Progress goes to out. Backend names
// must be unique.
func (h *Harness) Run(out io.Writer, backends ...Backend) error {
	for _, b := range backends {
		if err := os.WriteFile(FileName(h.cfg.Dir, b.Name), []byte(Header+"\n"), 0o644); err != nil {
			return fmt.Errorf("bench: writing header: %w", err)
		}
	}
	rounds := max(h.cfg.Rounds, 1)
	for _, size := range h.cfg.Sizes {
		fmt.Fprintf(out, "Testing size: %d\n", size)
		for range rounds {
			data, err := h.dataset(size)
			if err != nil {
				return fmt.Errorf("bench: dataset of size %d: %w", size, err)
			}
			for _, b := range backends {
				fmt.Fprintf(out, "  %s\n", b.Name)
				if err = h.record(b, data); err != nil {
					return err
				}
			}
		}
		h.forget(size)
	}
	return nil
}
