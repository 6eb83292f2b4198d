package main

import "github.com/afosan/inhereth/cmd/inhereth-cli/cmd"

func main() {
	cmd.Execute()
}
