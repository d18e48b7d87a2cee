package main

import "github.com/mcoot/scrabb-go/internal/cli"

func main() {
	cli.Execute()
}
