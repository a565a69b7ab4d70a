package main

import "github.com/ColdGrub1384/SeeLess/cmd"

func main() {
	cmd.Execute()
}
