package background

import (
	"context"
	"log"
	"sync"
	"time"

	"rentora/internal/jobs"

	"github.com/go-co-op/gocron/v2"
)

// JobScheduler manages recurring background jobs
type JobScheduler struct {
	scheduler gocron.Scheduler
	reminders *jobs.LeaseReminderService
	jobJobs   map[string]gocron.Job
	mu        sync.RWMutex
}

// NewJobScheduler creates a new job scheduler
func NewJobScheduler(reminders *jobs.LeaseReminderService) *JobScheduler {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	js := &JobScheduler{
		scheduler: scheduler,
		reminders: reminders,
		jobJobs:   make(map[string]gocron.Job),
	}

	js.registerJobs()

	return js
}

// Start starts the job scheduler
func (js *JobScheduler) Start() error {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
	return nil
}

// Stop stops the job scheduler
func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

// registerJobs registers all background jobs
func (js *JobScheduler) registerJobs() {
	// Lease expiry reminders - once a day
	reminderJob, err := js.scheduler.NewJob(
		gocron.DurationJob(24*time.Hour),
		gocron.NewTask(js.runLeaseReminders, context.Background()),
		gocron.WithName("lease-expiry-reminders"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Printf("Failed to create lease reminder job: %v", err)
	} else {
		js.jobJobs["lease-reminders"] = reminderJob
	}

	log.Printf("Registered %d background jobs", len(js.jobJobs))
}

func (js *JobScheduler) runLeaseReminders(ctx context.Context) {
	if err := js.reminders.ScheduledReminderRun(ctx); err != nil {
		log.Printf("Lease reminder run failed: %v", err)
	}
}
