package main

import "github.com/novalith-hq/httpbridge/internal/cli"

var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.Execute()
}
