package count_test

import (
	"fmt"

	"github.com/katalvlaran/combinat/count"
)

// ExampleFactorial shows the transparent switch to arbitrary precision:
// 20! is the last factorial that fits a machine word, 21! is not — both
// are exact.
func ExampleFactorial() {
	f20, _ := count.Factorial(20)
	f21, _ := count.Factorial(21)

	fmt.Println(f20, f20.IsBig())
	fmt.Println(f21, f21.IsBig())
	// Output:
	// 2432902008176640000 false
	// 51090942171709440000 true
}

// ExampleCombination counts poker hands — exactly.
func ExampleCombination() {
	hands, _ := count.Combination(52, 5)
	fmt.Println(hands)
	// Output:
	// 2598960
}

// ExampleFactoradic decomposes 463 into factorial-number-system digits,
// least-significant first: 463 = 3·5! + 4·4! + 1·3! + 0·2! + 1·1!.
func ExampleFactoradic() {
	digits, _ := count.Factoradic(count.FromUint64(463), 0)
	fmt.Println(digits)

	value, _ := count.FactoradicValue(digits)
	fmt.Println(value)
	// Output:
	// [0 1 0 1 4 3]
	// 463
}
