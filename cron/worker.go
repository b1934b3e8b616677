package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"stayx/config"
	"stayx/models"
	"stayx/services/notification"

	"github.com/hibiken/asynq"
)

const TypeReminderSend = "booking:reminder"

// reminderLeadTime is how long before check-in the reminder fires.
const reminderLeadTime = 24 * time.Hour

// ReminderPayload is the task body for a check-in reminder.
type ReminderPayload struct {
	BookingID  string    `json:"bookingId"`
	UserID     string    `json:"userId"`
	PropertyID string    `json:"propertyId"`
	CheckIn    time.Time `json:"checkIn"`
}

func queueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// ReminderScheduler enqueues check-in reminders. It satisfies the checkout
// service's Reminders dependency.
type ReminderScheduler struct {
	client *asynq.Client
}

// NewReminderScheduler creates the asynq client for reminder scheduling.
func NewReminderScheduler() *ReminderScheduler {
	return &ReminderScheduler{client: asynq.NewClient(queueRedisOpt())}
}

// ScheduleCheckInReminder enqueues a reminder 24 hours before check-in.
// Bookings checking in sooner than that get no reminder.
func (s *ReminderScheduler) ScheduleCheckInReminder(ctx context.Context, b *models.Booking) error {
	fireAt := b.CheckInDate.Add(-reminderLeadTime)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(ReminderPayload{
		BookingID:  b.ID,
		UserID:     b.UserID,
		PropertyID: b.PropertyID,
		CheckIn:    b.CheckInDate,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeReminderSend, payload)
	if _, err := s.client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(notifSvc notification.Service) {
	srv := asynq.NewServer(
		queueRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(notifSvc))

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifSvc notification.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		data := map[string]string{
			"bookingId":  p.BookingID,
			"propertyId": p.PropertyID,
			"checkIn":    p.CheckIn.Format(time.RFC3339),
		}

		title := "Your stay is coming up"
		body := fmt.Sprintf("Check-in is on %s. Safe travels!", p.CheckIn.Format("Jan 2, 2006"))

		if err := notifSvc.SendUserPush(ctx, p.UserID, title, body, data); err != nil {
			log.Printf("[ReminderHandler] failed to send notification: %v", err)
			return err
		}
		return nil
	}
}
