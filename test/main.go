package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/harborview/housekeeping"

	_ "github.com/go-sql-driver/mysql"
)

func main() {
	// 1) Open *sql.DB for the materialized guest-intelligence records
	dsn := "root:secret@tcp(127.0.0.1:3306)/hotel?charset=utf8mb4&parseTime=True"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		panic(err)
	}

	// Optionally, verify connection
	if err = db.Ping(); err != nil {
		panic(err)
	}
	fmt.Println("Connected to database.")

	intel, err := housekeeping.NewSQLIntelligence(db)
	if err != nil {
		panic(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Seed one captured note so the checkout below gets enriched
	_ = intel.Save(ctx, housekeeping.GuestIntel{
		GuestName:   "Dana Reyes",
		Occasion:    "Anniversary",
		Preferences: []string{"High floor", "Extra pillows"},
		Dietary:     []string{"Vegetarian"},
		CapturedAt:  time.Now().Add(-24 * time.Hour),
	})

	// 2) Create the engine config
	cfg := housekeeping.Config{
		Intelligence:   intel,
		RescanInterval: 5 * time.Second,
		InfoLog: func(ev housekeeping.LogEvent) {
			fmt.Println("info ", ev.Message)
		},
		ErrorLog: func(ev housekeeping.LogEvent) {
			fmt.Println("err ", ev.Message, ev.Err)
		},
	}

	// 3) Provision the roster
	engine := housekeeping.New(cfg, nil, nil)
	engine.Staff().Add(housekeeping.Staff{Name: "Maria", CurrentFloor: 5})
	engine.Staff().Add(housekeeping.Staff{Name: "Chen", CurrentFloor: 4})
	engine.Staff().Add(housekeeping.Staff{Name: "Priya", CurrentFloor: 2, Status: housekeeping.StaffBreak})

	// 4) Start the backlog rescan
	engine.StartRescan(ctx)
	defer engine.Shutdown(5 * time.Second)

	// 5) Run one checkout through its whole lifecycle
	arrival := time.Now().Add(90 * time.Minute)
	task, err := engine.ProcessCheckout(ctx, housekeeping.CheckoutEvent{
		RoomNumber:    "501",
		NextArrival:   &arrival,
		NextGuestName: "Dana Reyes",
		NextGuestVip:  true,
	})
	if err != nil {
		panic(err)
	}
	fmt.Printf("task %s: %s priority %d, assigned to %v, prefs %v\n",
		task.ID, task.PriorityLevel, task.Priority, task.AssignedTo, task.NextGuestPreferences)

	if _, err := engine.StartTask(task.ID); err != nil {
		panic(err)
	}
	if _, err := engine.CompleteTask(task.ID); err != nil {
		panic(err)
	}

	status := engine.QueueStatus()
	fmt.Printf("queue: %d tasks, %d pending, %d in progress, staff %v\n",
		len(status.Tasks), status.PendingCount, status.InProgressCount, status.StaffCounts)
}
