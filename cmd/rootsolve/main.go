package main

import "idz2_roots/cmd/rootsolve/cmd"

func main() {
	cmd.Execute()
}
