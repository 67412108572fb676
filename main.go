package main

import (
	"log"

	"Hearth/CronJobs"
	"Hearth/FiberConfig"
	"Hearth/Models"
	"Hearth/Slack"
)

func main() {
	Models.Connect()

	digest := CronJobs.NewDigestScheduler(Slack.NewNotifier(), false)
	if err := digest.Start(); err != nil {
		log.Println("Failed to start digest scheduler:", err)
	}

	FiberConfig.FiberConfig()
}
