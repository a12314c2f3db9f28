// Command concatprimes finds the minimum-sum set of k primes whose
// pairwise concatenations are all prime.
//
// It takes exactly one scalar input — the set size k, as the sole
// argument or prompted from stdin — and prints the primes (in discovery
// order) and their sum on stdout. Progress is logged to stderr.
//
// Usage:
//
//	concatprimes 4
//	concatprimes        # prompts for k
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/lvkm/concatprimes/clique"
)

// logEvery spaces out progress lines; long hunts stream thousands of
// primes between log-worthy moments.
const logEvery = 250

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	k, err := readSetSize(os.Args[1:])
	if err != nil {
		logger.Fatal("invalid set size", zap.Error(err))
	}

	res, err := clique.Search(k,
		clique.WithOnPrime(func(p int64, index int) {
			if index%logEvery == 0 {
				logger.Info("still searching",
					zap.Int64("prime", p),
					zap.Int("vertices", index+1),
				)
			}
		}),
	)
	if err != nil {
		logger.Fatal("search failed", zap.Int("k", k), zap.Error(err))
	}
	logger.Info("clique found", zap.Int("k", k), zap.Int64("sum", res.Sum))

	fmt.Printf("Prime set of size %d where all pairwise concatenations are also prime:\n", k)
	fmt.Printf("  %s\n", joinPrimes(res.Primes))
	fmt.Println("Sum of those primes:")
	fmt.Printf("  %d\n", res.Sum)
}

// readSetSize takes k from the first argument, or prompts on stdin when
// no argument is given.
func readSetSize(args []string) (int, error) {
	if len(args) > 0 {
		return parseSetSize(args[0])
	}
	fmt.Fprint(os.Stderr, "Enter a natural number (greater than 1): ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return 0, fmt.Errorf("read set size: %w", err)
	}

	return parseSetSize(line)
}

func parseSetSize(s string) (int, error) {
	k, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("set size must be an integer: %w", err)
	}

	return k, nil
}

func joinPrimes(ps []int64) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = strconv.FormatInt(p, 10)
	}

	return strings.Join(parts, ", ")
}
