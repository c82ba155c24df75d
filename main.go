// Nego is a negative testing tool for REST APIs.
package main

import "github.com/mouse-blink/nego/cmd"

func main() {
	cmd.Execute()
}
