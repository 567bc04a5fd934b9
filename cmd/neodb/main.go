// Command neodb explores NASA close approach data from the command line.
//
//	neodb inspect --pdes 433 --verbose
//	neodb query --start-date 2020-01-01 --max-distance 0.025 --limit 5
//	neodb query --hazardous --outfile results.csv
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
