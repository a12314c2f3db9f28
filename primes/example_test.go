package primes_test

import (
	"fmt"

	"github.com/lvkm/concatprimes/primes"
)

// ExampleIsPrime demonstrates the trial-division test on a pair of
// concatenations of 7 and 109.
func ExampleIsPrime() {
	for _, x := range []int64{7109, 1097, 7110} {
		ok, err := primes.IsPrime(x)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(x, ok)
	}
	// Output:
	// 7109 true
	// 1097 true
	// 7110 false
}

// ExampleStream shows the first few primes after the seed.
func ExampleStream() {
	s := primes.NewStream()
	out := make([]int64, 0, 5)
	for i := 0; i < 5; i++ {
		out = append(out, s.Next())
	}
	fmt.Println(out, s.Count())
	// Output:
	// [7 11 13 17 19] 5
}
