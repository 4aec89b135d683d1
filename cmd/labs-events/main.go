package main

import "github.com/pfrederiksen/labs-events/internal/cli"

func main() {
	cli.Execute()
}
