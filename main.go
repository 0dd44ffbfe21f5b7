package main

import "pingdash/internal/cli"

func main() {
	cli.Execute()
}
