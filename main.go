package main

import "github.com/lexiconlabs/counsel/cmd"

func main() {
	cmd.Execute()
}
