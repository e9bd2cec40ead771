package main

import "daylog/cmd"

func main() {
	cmd.Execute()
}
