package main

import "github.com/pdftab/pdftab/cmd/pdftab/cmd"

func main() {
	cmd.Execute()
}
