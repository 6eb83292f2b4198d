package main

import "github.com/afosan/inhereth/cmd/inhereth-server/cmd"

func main() {
	cmd.Execute()
}
