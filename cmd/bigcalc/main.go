package main

import "github.com/govalues/bigdecimal/internal/cli"

func main() {
	cli.Execute()
}
