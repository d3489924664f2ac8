package main

import "inspovault/internal/cli"

func main() {
	cli.Execute()
}
