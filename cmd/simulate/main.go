// Simulate replays a scripted gesture sequence against two in-memory lists
// on a virtual clock and logs where each list ends up.
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
