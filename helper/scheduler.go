package helper

import (
	"log"

	"ticket_server/database"

	"github.com/go-co-op/gocron/v2"
)

var writeOffScheduler gocron.Scheduler

func RunWriteOff() {
	log.Println("[CRON] ticket write-off sweep triggered")

	count, err := WriteOffTickets(database.DB)
	if err != nil {
		log.Printf("write-off sweep failed: %v", err)
		return
	}
	if count > 0 {
		log.Printf("write-off sweep disabled %d tickets", count)
	}
}

// StartWriteOffScheduler schedules the nightly sweep that writes off redeemed
// tickets past their validity window.
func StartWriteOffScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	writeOffScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 10, 0),
			),
		),
		gocron.NewTask(RunWriteOff),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("ticket write-off scheduler started (00:10)")
}

func StopWriteOffScheduler() {
	if writeOffScheduler != nil {
		_ = writeOffScheduler.Shutdown()
	}
}
