package main

import "pobsd/cmd/pobsd-cli/cmd"

func main() {
	cmd.Execute()
}
