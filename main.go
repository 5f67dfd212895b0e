package main

import "github.com/deploymenttheory/go-ledgerbuild/cmd"

func main() {
	cmd.Execute()
}
