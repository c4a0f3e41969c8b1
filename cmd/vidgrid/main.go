// Package main is the vidgrid entry point.
package main

import (
	"log"

	"github.com/sfaram/vidgrid/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
