// Package count provides exact combinatorial counting primitives and the
// factorial-number-system (factoradic) converter that rank-based
// enumeration is built on.
//
// 🚀 What is count?
//
//	count answers “how many?” exactly, no matter how fast the answer grows:
//	  • Permutation(n, k) — ordered selections: n·(n−1)·…·(n−k+1)
//	  • Combination(n, k) — unordered selections: P(n,k) / k!
//	  • Factorial(n)      — n! = Permutation(n, n)
//	  • Pow(base, exp)    — baseᵉˣᵖ for radix-style object counts
//	  • Factoradic(v, w)  — factorial-number-system digits of v
//
// ✨ Why a dedicated numeric core?
//
//   - Counts overflow machine integers early: 21! already exceeds uint64.
//   - Count is a tagged numeral — a bounded uint64 while the value fits,
//     a math/big.Int the moment it does not. Every operation downcasts
//     back to the bounded form as soon as a result fits again; a value is
//     never silently truncated.
//   - All arithmetic is exact. There is no floating point anywhere.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/combinat/count"
//
//	f, _ := count.Factorial(21)
//	fmt.Println(f.IsBig(), f) // true 51090942171709440000
//
//	digits, _ := count.Factoradic(count.FromUint64(463), 0)
//	// digits = [0 1 0 1 4 3], least-significant first:
//	// 463 = 3·5! + 4·4! + 1·3! + 0·2! + 1·1!
//
// Performance:
//
//   - The uint64 fast path covers every value below 2⁶⁴ with zero heap
//     allocations; promotion to big.Int is transparent and per call.
//   - Permutation/Combination/Factorial run in O(k) multiplications;
//     Factoradic runs in O(w) divisions for w produced digits.
//
// All functions are pure and safe for concurrent use.
package count
