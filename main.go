package main

import "github.com/fieldcalc/pipeheat/cmd"

func main() {
	cmd.Execute()
}
