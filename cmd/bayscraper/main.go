package main

import (
	"github.com/ashphythian/bayscraper/cmd/bayscraper/cmd"

	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()
	cmd.Execute()
}
