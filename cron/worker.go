package cron

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"dragontravel/config"
	"dragontravel/services/speech"
	"dragontravel/services/storage"
	"dragontravel/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitAudioWorker runs the audio-synthesis worker in background. Synthesis is
// decoupled from the dialogue turn: a failed synthesis retries without
// touching the stored reservation.
func InitAudioWorker(synth speech.Synthesizer, store storage.StorageService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 4,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAudioSynthesize, handleAudioTask(synth, store))

	go monitorRedisConnection()

	go func() {
		log.Println("[AudioWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[AudioWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[AudioWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleAudioTask(synth speech.Synthesizer, store storage.StorageService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.AudioPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[AudioWorker] invalid payload: %v", err)
			return err
		}

		audio, err := synth.Synthesize(ctx, p.Text, p.Language)
		if err != nil {
			log.Printf("[AudioWorker] synthesis failed for %s: %v", p.AudioID, err)
			return err
		}

		tmp, err := os.CreateTemp("", "summary-*.mp3")
		if err != nil {
			return err
		}
		defer os.Remove(tmp.Name())
		if _, err := tmp.Write(audio); err != nil {
			tmp.Close()
			return err
		}
		tmp.Close()

		url, err := store.UploadAudio(ctx, tmp.Name(), p.AudioID)
		if err != nil {
			log.Printf("[AudioWorker] upload failed for %s: %v", p.AudioID, err)
			return err
		}
		log.Printf("[AudioWorker] audio stored for %s at %s", p.AudioID, url)
		return nil
	}
}

// monitorRedisConnection pings the queue Redis periodically to surface
// failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer client.Close()

	ticker := time.NewTicker(60 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[AudioWorker] redis ping failed: %v", err)
		}
		cancel()
	}
}
