// Command gridview browses people and their leave tickets in virtualized
// grids, in a desktop window or in the terminal.
//
// Usage:
//
//	gridview desktop                     # OpenGL window
//	gridview tui                         # terminal
//	gridview snapshot -o people.jpg      # offscreen render
//	gridview --data book.toml desktop    # load records instead of the sample
package main

import "runtime"

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	execute()
}
