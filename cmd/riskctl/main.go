package main

import "risk-measures/internal/cli"

func main() {
	cli.Execute()
}
