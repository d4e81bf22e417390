package main

import "microcredit/internal/app"

// @title Microcredit Companies API
// @version 1.0
// @description CRUD and dashboard statistics over microcredit company records.
// @BasePath /
func main() {
	app.Run()
}
