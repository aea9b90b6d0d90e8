package main

import "github.com/saadjs/apexfuel/cmd/apexfuel"

func main() {
	apexfuel.Execute()
}
