package main

import "github.com/emiliopalmerini/mcba/internal/cli"

func main() {
	cli.Execute()
}
