package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/g-m-twostay/prio-queues/Queues"
)

type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

var errQuit = errors.New("input closed")

func (u *prompter) line(prompt string) (string, error) {
	fmt.Fprint(u.out, prompt)
	if !u.in.Scan() {
		if e := u.in.Err(); e != nil {
			return "", e
		}
		return "", errQuit
	}
	return strings.TrimSpace(u.in.Text()), nil
}

// intIn asks until the answer is an integer in [min, max].
func (u *prompter) intIn(prompt string, min, max int) (int, error) {
	for {
		s, e := u.line(prompt)
		if e != nil {
			return 0, e
		}
		if v, e := strconv.Atoi(s); e == nil && v >= min && v <= max {
			return v, nil
		}
		fmt.Fprintf(u.out, "Invalid value. Enter a number from %d to %d.\n", min, max)
	}
}

func (u *prompter) anyInt(prompt string) (int, error) {
	return u.intIn(prompt, math.MinInt, math.MaxInt)
}

func buildFromFile(u *prompter, q Queues.ExtendedQueue[int, int]) error {
	name, e := u.line("File name: ")
	if e != nil {
		return e
	}
	f, err := os.Open(name)
	if err != nil {
		fmt.Fprintln(u.out, "Cannot open file:", err)
		return nil
	}
	defer f.Close()
	q.Clear()
	if _, err = Queues.Load[int, int](f, q, Queues.ParseInt[int]); err != nil {
		fmt.Fprintln(u.out, "Read error:", err)
	}
	fmt.Fprintf(u.out, "Built a queue of %d entries.\n", q.Size())
	return nil
}

func createRandom(u *prompter, q Queues.ExtendedQueue[int, int], rng *rand.Rand) error {
	size, e := u.intIn("Queue size (min 1): ", 1, math.MaxInt)
	if e != nil {
		return e
	}
	lo, e := u.anyInt("Minimum priority: ")
	if e != nil {
		return e
	}
	hi, e := u.intIn("Maximum priority: ", lo, math.MaxInt)
	if e != nil {
		return e
	}
	q.Clear()
	if err := Queues.Populate[int, int](q, uint(size), lo, hi, rng); err != nil {
		fmt.Fprintln(u.out, err)
		return nil
	}
	fmt.Fprintf(u.out, "Generated a random queue of %d entries.\n", size)
	return nil
}

// structureMenu loops until the user goes back or input ends.
func structureMenu(u *prompter, q Queues.ExtendedQueue[int, int], name string, rng *rand.Rand) error {
	for {
		fmt.Fprintf(u.out, "=== %s ===\n", name)
		fmt.Fprintln(u.out, "1. Build from file")
		fmt.Fprintln(u.out, "2. Insert element")
		fmt.Fprintln(u.out, "3. Extract max")
		fmt.Fprintln(u.out, "4. Find max")
		fmt.Fprintln(u.out, "5. Random queue")
		fmt.Fprintln(u.out, "6. Display")
		fmt.Fprintln(u.out, "7. Modify key")
		fmt.Fprintln(u.out, "8. Back")
		c, e := u.intIn("Choice: ", 1, 8)
		if e != nil {
			return e
		}
		switch c {
		case 1:
			e = buildFromFile(u, q)
		case 2:
			var el, p int
			if el, e = u.anyInt("Element: "); e == nil {
				if p, e = u.anyInt("Priority: "); e == nil {
					q.Insert(el, p)
					fmt.Fprintln(u.out, "Inserted.")
				}
			}
		case 3:
			if el, err := q.ExtractMax(); err != nil {
				fmt.Fprintln(u.out, err)
			} else {
				fmt.Fprintln(u.out, "Extracted:", el)
			}
		case 4:
			if el, err := q.FindMax(); err != nil {
				fmt.Fprintln(u.out, err)
			} else {
				fmt.Fprintln(u.out, "Max:", el)
			}
		case 5:
			e = createRandom(u, q, rng)
		case 6:
			e = Queues.Display(u.out, q)
		case 7:
			var el, p int
			if el, e = u.anyInt("Element to modify: "); e == nil {
				if p, e = u.anyInt("New priority: "); e == nil {
					if err := q.ModifyKey(el, p); err != nil {
						fmt.Fprintln(u.out, err)
					} else {
						fmt.Fprintln(u.out, "Priority changed.")
					}
				}
			}
		case 8:
			return nil
		}
		if e != nil {
			return e
		}
	}
}

func run(in io.Reader, out io.Writer, rng *rand.Rand) error {
	u := &prompter{bufio.NewScanner(in), out}
	heapQ := Queues.NewHeapQueue[int, int](0)
	listQ := Queues.NewListQueue[int, int]()
	for {
		fmt.Fprintln(out, "=== MAIN MENU ===")
		fmt.Fprintln(out, "1. Binary heap")
		fmt.Fprintln(out, "2. Linked list")
		fmt.Fprintln(out, "3. Quit")
		c, e := u.intIn("Choice: ", 1, 3)
		if e != nil {
			return e
		}
		switch c {
		case 1:
			e = structureMenu(u, heapQ, "Binary heap", rng)
		case 2:
			e = structureMenu(u, listQ, "Linked list", rng)
		case 3:
			return nil
		}
		if e != nil {
			return e
		}
	}
}

func main() {
	err := run(os.Stdin, os.Stdout, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil && err != errQuit {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
