package main

import "github.com/emfajardo/gogrillage/cmd"

func main() {
	cmd.Execute()
}
