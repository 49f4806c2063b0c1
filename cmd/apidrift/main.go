package main

import "github.com/apidrift/apidrift/cmd/apidrift/commands"

func main() {
	commands.Execute()
}
