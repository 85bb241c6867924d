package main

import "github.com/disgoorg/gather-bot/cmd"

func main() {
	cmd.Execute()
}
