package main

import "github.com/Alijeyrad/anqa_gateway/cmd"

func main() {
	cmd.Execute()
}
