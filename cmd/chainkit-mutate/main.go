package main

import "github.com/oshokin/chainkit-mutate/cmd/chainkit-mutate/cmd"

func main() {
	cmd.Execute()
}
