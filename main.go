package main

import "github.com/alexiusacademia/gofdn/cmd"

func main() {
	cmd.Execute()
}
