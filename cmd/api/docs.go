package main

// @title IDConsole API
// @version 1.0
// @description Synthesizes fake identities from reverse geocoded addresses and random person profiles.
// @host localhost:8080
// @BasePath /
