package main

import (
	"os"

	"github.com/mindmate/mindmate-server/wellnessservice"
)

func main() {
	if err := wellnessservice.Run(); err != nil {
		os.Exit(1)
	}
}
