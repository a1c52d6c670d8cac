package main

import "otc-compare/cmd"

func main() {
	cmd.Execute()
}
