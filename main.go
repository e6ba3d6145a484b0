package main

import "gsgen/cmd/gsgen"

func main() {
	gsgen.Execute()
}
