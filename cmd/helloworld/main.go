// The helloworld fixture prints a fixed banner followed by a suffix baked
// in at link time. It is the smallest binary the packaging checks consume.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bionicotaku/lingo-services-greeter/internal/greeting"
)

// go build -ldflags "-X main.suffix=CROSS"
var suffix string

func main() {
	run(os.Stdout)
}

func run(w io.Writer) {
	s := suffix
	if s == "" {
		s = greeting.DefaultSuffix
	}
	fmt.Fprint(w, "Hello World!\n"+s+"\n")
}
