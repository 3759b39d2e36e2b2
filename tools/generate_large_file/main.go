// Large Configuration File Generator
//
// This tool generates a large configuration file for performance testing and
// profiling. It creates realistic sections with comments, blank lines and
// inline comments to stress-test the parser and formatter.
//
// Usage:
//
//	go run main.go > large.conf
//	go run main.go 20000000 > large.conf  # Specify target size in bytes
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
)

const defaultTargetSize = 10 * 1024 * 1024 // 10MB

var (
	sections = []string{
		"server", "database", "cache", "logging", "metrics",
		"auth", "tls", "limits", "features", "paths",
	}

	keys = []string{
		"enabled", "host", "port", "timeout", "retries",
		"level", "path", "max_connections", "buffer_size", "interval",
		"username", "pool_size", "ttl", "threshold", "rate",
	}

	values = []string{
		"true", "false", "localhost", "8080", "30s",
		"/var/lib/app", "debug", "100", "4096", "0.75",
	}

	comments = []string{
		" tuned for production",
		" do not change without review",
		" see runbook",
		" default inherited from template",
		" overridden per environment",
	}
)

func main() {
	targetSize := defaultTargetSize
	if len(os.Args) > 1 {
		if n, err := strconv.Atoi(os.Args[1]); err == nil {
			targetSize = n
		}
	}

	rng := rand.New(rand.NewSource(42)) // Deterministic output

	written := 0
	emit := func(line string) {
		fmt.Println(line)
		written += len(line) + 1
	}

	for i := 0; written < targetSize; i++ {
		if rng.Intn(4) == 0 {
			emit(";" + comments[rng.Intn(len(comments))])
		}
		emit(fmt.Sprintf("[%s-%d]", sections[rng.Intn(len(sections))], i))

		for j := 0; j < 5+rng.Intn(10); j++ {
			key := keys[rng.Intn(len(keys))]
			value := values[rng.Intn(len(values))]
			if rng.Intn(5) == 0 {
				emit(fmt.Sprintf("%s = %s  ;%s", key, value, comments[rng.Intn(len(comments))]))
			} else {
				emit(fmt.Sprintf("%s = %s", key, value))
			}
		}
		emit("")
	}
}
