package main

import (
	"booking-checkout/cmd"

	_ "go.uber.org/automaxprocs"
)

func main() {
	cmd.Start()
}
