// Command linepatch rewrites lines of text files that contain trigger strings.
package main

import "github.com/mouse-blink/linepatch/cmd"

func main() {
	cmd.Execute()
}
