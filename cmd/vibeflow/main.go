package main

import "github.com/ewilliams-labs/vibeflow/internal/cli"

func main() {
	cli.Execute()
}
