package main

import "linefield/internal/field"

func main() {
	field.Run()
}
