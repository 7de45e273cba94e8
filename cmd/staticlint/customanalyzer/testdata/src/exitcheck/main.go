package main

import (
	"fmt"
	"os"
)

func helper() {
	os.Exit(3)
}

func main() {
	fmt.Println("starting")
	defer fmt.Println("never printed")
	if len(os.Args) > 5 {
		os.Exit(2) // want "direct os.Exit call in main function"
	}
	func() {
		os.Exit(1) // want "direct os.Exit call in main function"
	}()
	helper()
}
