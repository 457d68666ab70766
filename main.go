package main

import "github.com/jaydeeprathod/portfolio-backend/cmd"

func main() {
	cmd.Execute()
}
