package main

import "fcab/cmd"

func main() {
	cmd.Execute()
}
