package main

import "github.com/viant/dsutil/internal/cli"

func main() {
	cli.Execute()
}
