// tripcheck is the build-time gate for trip content: it validates every
// trip file and reports problems before the static site is built.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
