package magnitude_test

import (
	"fmt"

	"github.com/voltlab/dcsim/magnitude"
)

// ExampleParse demonstrates suffix handling, including the preserved
// "m = mega" convention.
func ExampleParse() {
	fmt.Printf("%.0f\n", magnitude.Parse("330"))
	fmt.Printf("%.0f\n", magnitude.Parse("10k"))
	fmt.Printf("%.0f\n", magnitude.Parse("2M"))
	fmt.Printf("%.6f\n", magnitude.Parse("47u"))
	fmt.Printf("%.0f\n", magnitude.Parse("not a number"))
	// Output:
	// 330
	// 10000
	// 2000000
	// 0.000047
	// 0
}
