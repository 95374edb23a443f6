package main

import (
	"fmt"

	"github.com/mfg-nyu/opcalc/option"
)

func main() {
	opt := option.New(
		1606780800, // valuation time, 2020/12/01 00:00:00
		1610668800, // maturity time, 2021/01/15 00:00:00
		100.0,      // asset price
		105.0,      // strike
		0.005,      // interest
		0.23,       // volatility
		0.0,        // payout rate
	)

	values := option.Values(opt)
	deltas := option.Deltas(opt)

	fmt.Printf("Time to maturity: %.10f years\n", opt.TimeToMaturity())
	fmt.Printf("Call value: %.10f\n", values.Call)
	fmt.Printf("Put value:  %.10f\n", values.Put)
	fmt.Printf("Call delta: %.10f\n", deltas.Call)
	fmt.Printf("Put delta:  %.10f\n", deltas.Put)
}
