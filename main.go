package main

import "github.com/pezeshkyar/checkup_backend/cmd"

func main() {
	cmd.Execute()
}
