package main

import "github.com/dev-shimada/csv2md/cmd"

func main() {
	cmd.Execute()
}
