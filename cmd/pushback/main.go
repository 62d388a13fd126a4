// The pushback command runs the ball transport control system on the bench
// rig and inspects recorded matches.
package main

func main() {
	Execute()
}
