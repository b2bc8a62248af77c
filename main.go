package main

import "github.com/koki-develop/ditherart/cmd"

func main() {
	cmd.Execute()
}
