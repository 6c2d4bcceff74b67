package main

import "github.com/brisk-dl/brisk/cmd"

func main() {
	cmd.Execute()
}
