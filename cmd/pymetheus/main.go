// Command pymetheus manages a personal bibliographic library.
package main

import "github.com/emreozcan/pymetheus/internal/cli"

func main() {
	cli.Execute()
}
