package main

import "github.com/sap-gg/gqlmerge/cmd"

func main() {
	cmd.Execute()
}
