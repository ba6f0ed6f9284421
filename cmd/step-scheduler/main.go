package main

import (
	"github.com/pgy/step-scheduler/pkg/cli/cmd"
)

func main() {
	cmd.Execute()
}
