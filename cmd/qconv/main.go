// SPDX-License-Identifier: MIT

// Command qconv converts values between the units of the si package.
//
//	qconv convert length 3.5 mi km
//	qconv convert temperature 98.6 °F °C --precision 1
//	qconv units pressure
//	qconv --catalog extra.yaml convert length 2 fur ch
package main

import "os"

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
