package main

import "ticktock/cmd"

func main() {
	cmd.Execute()
}
