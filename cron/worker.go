package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"roomquest/config"
	"roomquest/services/scheduling"
)

const TypeMaterializeSlots = "slots:materialize"

// MaterializePayload identifies the location whose recurring schedules should
// be expanded into persisted slots.
type MaterializePayload struct {
	LocationID string `json:"locationId"`
}

// NewMaterializeTask builds the asynq task for a location.
func NewMaterializeTask(locationID string) (*asynq.Task, error) {
	payload, err := json.Marshal(MaterializePayload{LocationID: locationID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeMaterializeSlots, payload), nil
}

// InitMaterializeWorker runs the async worker in background. Materialization
// writes rows for the near-horizon virtual slots so hot-path resolves hit the
// persisted index; resolver correctness never depends on it having run.
func InitMaterializeWorker(engine scheduling.SlotEngine, cal scheduling.CalendarService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeMaterializeSlots, handleMaterializeTask(engine, cal))

	// Start async worker with retry logic
	go func() {
		log.Println("[MaterializeWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[MaterializeWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[MaterializeWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleMaterializeTask(engine scheduling.SlotEngine, cal scheduling.CalendarService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p MaterializePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[MaterializeWorker] invalid payload: %v", err)
			return err
		}

		horizon := config.AppConfig.MaterializeHorizonDays
		now := time.Now().UTC()
		var created int
		for d := 0; d < horizon; d++ {
			day := now.AddDate(0, 0, d)
			date := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

			candidates, err := cal.VirtualSlotsForDate(ctx, p.LocationID, date)
			if err != nil {
				log.Printf("[MaterializeWorker] failed to expand %s on %s: %v", p.LocationID, date.Format("2006-01-02"), err)
				return err
			}
			for i := range candidates {
				existing, err := engine.ResolveSlot(ctx, candidates[i].SlotNumber)
				if err != nil {
					return err
				}
				if existing != nil && existing.Exists {
					continue
				}
				if err := engine.SaveSlot(ctx, &candidates[i], ""); err != nil {
					return err
				}
				created++
			}
		}
		log.Printf("[MaterializeWorker] location %s: %d slots materialized", p.LocationID, created)
		return nil
	}
}
