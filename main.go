package main

import "github.com/scholarly-commons/pureimport/cmd"

func main() {
	cmd.Execute()
}
