package main

import "github.com/sw33tLie/gamecount/cmd"

func main() {
	cmd.Execute()
}
