package main

import "morisco/internal/app/server"

func main() {
	server.Run()
}
