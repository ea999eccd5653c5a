package main

import "qrforge/cmd/qrforge/cmd"

func main() {
	cmd.Execute()
}
