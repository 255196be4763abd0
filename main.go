package main

import "funcflow/cmd"

func main() {
	cmd.Execute()
}
