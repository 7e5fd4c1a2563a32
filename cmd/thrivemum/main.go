package main

import "github.com/diogo/thrivemum/internal/commands"

func main() {
	commands.Execute()
}
