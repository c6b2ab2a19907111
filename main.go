package main

import "advdiff/cli"

func main() {
	cli.Execute()
}
