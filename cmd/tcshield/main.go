package main

import "tcshield-lab/internal/cli"

func main() {
	cli.Execute()
}
