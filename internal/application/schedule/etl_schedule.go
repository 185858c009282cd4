package schedule

import (
	"context"
	"errors"
	"time"

	"weather-etl/pkg/log"
	"weather-etl/pkg/msg"
	"weather-etl/pkg/redis"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const lockNamespace = "weather-etl"

// Task is one scheduled unit run.
type Task struct {
	Name string
	Cron string
	Run  func(ctx context.Context)
}

// EtlScheduler runs the sync and export units on cron expressions. When a Redis client is
// set, each run first takes a per-task lock so only one runner replica executes it.
type EtlScheduler struct {
	cron        *cron.Cron
	redisClient *redis.Client
	lockTTL     time.Duration
	tasks       []Task
}

// NewEtlScheduler creates a scheduler. redisClient may be nil.
func NewEtlScheduler(redisClient *redis.Client, lockTTL time.Duration, tasks ...Task) *EtlScheduler {
	if lockTTL <= 0 {
		lockTTL = 5 * time.Minute
	}
	return &EtlScheduler{
		cron:        cron.New(),
		redisClient: redisClient,
		lockTTL:     lockTTL,
		tasks:       tasks,
	}
}

// InitScheduleTasks registers every task with a non-empty cron expression and starts the cron.
func (s *EtlScheduler) InitScheduleTasks(ctx context.Context) error {
	for _, task := range s.tasks {
		if task.Cron == "" {
			continue
		}
		task := task
		if _, err := s.cron.AddFunc(task.Cron, func() { s.ExecuteScheduledTask(ctx, task) }); err != nil {
			return err
		}
		log.Info(msg.GetMessage("schedule.registered", task.Name, task.Cron))
	}

	s.cron.Start()
	return nil
}

// ExecuteScheduledTask runs task once, guarded by the distributed lock when configured.
func (s *EtlScheduler) ExecuteScheduledTask(ctx context.Context, task Task) {
	requestID := uuid.New().String()
	log.Info("Scheduled task triggered", zap.String("task", task.Name), zap.String("request_id", requestID))

	if s.redisClient != nil {
		lock := redis.NewLock(s.redisClient, lockNamespace, task.Name, s.lockTTL)
		acquired, err := lock.TryLock(ctx)
		if err != nil {
			log.Error("Failed to acquire scheduler lock", zap.String("task", task.Name), zap.Error(err))
			return
		}
		if !acquired {
			log.Info(msg.GetMessage("schedule.skipped", task.Name), zap.String("request_id", requestID))
			return
		}
		defer func() {
			if err := lock.Unlock(context.WithoutCancel(ctx)); err != nil && !errors.Is(err, redis.ErrLockNotHeld) {
				log.Warn("Failed to release scheduler lock", zap.String("task", task.Name), zap.Error(err))
			}
		}()
	}

	task.Run(ctx)
	log.Info("Scheduled task completed", zap.String("task", task.Name), zap.String("request_id", requestID))
}

// Stop gracefully stops the scheduler
func (s *EtlScheduler) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}
