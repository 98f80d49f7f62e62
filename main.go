package main

import "github.com/kamusis/certview/cmd"

func main() {
	cmd.Execute()
}
