package main

import "custom-hats/cmd"

func main() {
	cmd.Execute()
}
