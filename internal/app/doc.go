// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary execution lifecycle: load grid
// definitions, enumerate each grid in spiral order and render the result,
// decoupled from any specific entrypoint like a CLI.
package app
