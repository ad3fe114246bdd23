package main

import "github.com/rmacduff/awssearch/cmd"

func main() {
	cmd.Execute()
}
