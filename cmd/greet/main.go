// The greet fixture exercises the greeting library end to end: compose a
// greeting with a link-time suffix, print it, and exit non-zero when
// composition fails.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/bionicotaku/lingo-services-greeter/internal/greeting"
)

// go build -ldflags "-X main.suffix=CROSS"
var suffix string

// envMaxMessageBytes caps the composed message size; packaging checks set
// it to a tiny value to simulate allocation failure.
const envMaxMessageBytes = "GREETING_MAX_MESSAGE_BYTES"

func main() {
	os.Exit(run(os.Stdout))
}

func run(w io.Writer) int {
	composer := greeting.Composer{}
	if raw := os.Getenv(envMaxMessageBytes); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			composer.MaxMessageBytes = limit
		}
	}

	sayIt, err := composer.Compose(suffix)
	if err != nil {
		// The fixture contract is exit code 1 with no output.
		return 1
	}
	fmt.Fprint(w, sayIt+"\n\n")
	return 0
}
