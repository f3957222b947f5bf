package main

import "inventory-backend/internal/cli"

func main() {
	cli.Execute()
}
