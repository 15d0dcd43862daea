package main

import (
	"context"
	"log"
	"os"
	"summitbooking/config"
	"summitbooking/di"
	"summitbooking/helper"
)

const (
	argLength = 2
)

func main() {
	if len(os.Args) < argLength {
		log.Fatal("Migration action (up/down/drop/step-up/seed) is required")
	}

	cfg := config.Get()

	switch os.Args[1] {
	case "up":
		if err := helper.Up(cfg); err != nil {
			log.Fatal(err)
		}
	case "down":
		if err := helper.Down(cfg); err != nil {
			log.Fatal(err)
		}
	case "drop":
		if err := helper.Drop(cfg); err != nil {
			log.Fatal(err)
		}
	case "step-up":
		if err := helper.StepUp(cfg); err != nil {
			log.Fatal(err)
		}
	case "seed":
		seeder := di.InitializeSeeder()
		if err := seeder.Run(context.Background()); err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatal("Invalid action. Use 'up', 'down', 'drop', 'step-up' or 'seed'")
	}
}
