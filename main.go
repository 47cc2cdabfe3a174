package main

import "github.com/cmdkit/cmdkit/cmd"

func main() {
	cmd.Execute()
}
