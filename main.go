package main

import "replenishment-service/cmd"

func main() {
	cmd.Execute()
}
