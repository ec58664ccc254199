package main

//go:generate swag init -g cmd/server/main.go -o docs

// @title           Puckline API
// @version         0.1.0
// @description     NHL odds comparison, news ingestion, and AI parlay tools.
// @host            localhost:8080
// @BasePath        /
// @schemes         http
