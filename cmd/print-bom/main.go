package main

import "print-bom/internal/cli"

func main() {
	cli.Execute()
}
