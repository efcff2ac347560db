package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/brandcopilot/brand-copilot/internal/app"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using process environment")
	}

	application, err := app.New()
	if err != nil {
		fmt.Printf("Failed to init app: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	if err := application.Run(); err != nil {
		application.Log.Error("Server exited", "error", err)
		os.Exit(1)
	}
}
