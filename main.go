package main

import "jumplist-exporter/cmd"

func main() {
	cmd.Execute()
}
