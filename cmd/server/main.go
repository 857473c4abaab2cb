package main

import "resourcing/internal/app/server"

func main() {
	server.Run()
}
