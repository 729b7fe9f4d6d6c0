package main

import "wordlens/internal/cli"

func main() {
	cli.Execute()
}
