// Command ringdemo runs the progress ring countdown demo.
package main

import (
	"os"

	"github.com/apex/log"

	"github.com/go-drift/progressring/cmd/ringdemo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.WithError(err).Error("ringdemo failed")
		os.Exit(1)
	}
}
