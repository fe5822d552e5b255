package main

import (
	"log"

	"tunedex/cmd"
)

func main() {
	cmd.Execute()
	// If Execute() had a problem, Cobra would have called os.Exit.
	log.Println("Command execution finished or server started.")
}
