package main

import "github.com/zjrosen/aeroquant/cmd"

func main() {
	cmd.Execute()
}
