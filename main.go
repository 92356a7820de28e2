package main

import "moodbank/cmd"

func main() {
	cmd.Execute()
}
