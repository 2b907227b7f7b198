package main

import (
	"finvest_backend/internal/app"
)

func main() {
	app.Run()
}
