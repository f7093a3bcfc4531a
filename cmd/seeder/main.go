package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Seeder pushes synthetic listing-changed events into the topic the main
// service consumes from. Handy for demos and for watching the cache
// invalidation behave under load.
type Seeder struct {
	writer    *kafka.Writer
	isRunning atomic.Bool
	wg        sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
	topic     string
	brokers   []string
	totalSent atomic.Int64
	startedAt time.Time
}

type SeedRequest struct {
	Rate     int    `json:"rate"`
	Duration string `json:"duration"`
}

func NewSeeder(brokers []string, topic string) *Seeder {
	ctx, cancel := context.WithCancel(context.Background())

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		BatchSize:    100,
	}

	return &Seeder{
		writer:    writer,
		ctx:       ctx,
		cancel:    cancel,
		topic:     topic,
		brokers:   brokers,
		startedAt: time.Now(),
	}
}

func (s *Seeder) Start(rate int, duration time.Duration) {
	if s.isRunning.Load() {
		return
	}
	s.isRunning.Store(true)
	s.totalSent.Store(0)

	log.Printf("Starting seeder: rate=%d msg/s, duration=%v", rate, duration)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.isRunning.Store(false)

		ticker := time.NewTicker(time.Second / time.Duration(rate))
		defer ticker.Stop()

		timer := time.NewTimer(duration)
		defer timer.Stop()

		for {
			select {
			case <-ticker.C:
				message := generateFakeListing()
				jsonData, err := json.Marshal(message)
				if err != nil {
					log.Printf("Error marshaling message: %v", err)
					continue
				}

				err = s.writer.WriteMessages(s.ctx, kafka.Message{
					Key:   []byte(message["id"].(string)),
					Value: jsonData,
					Time:  time.Now(),
				})
				if err != nil {
					log.Printf("Error sending message to Kafka: %v", err)
				} else {
					s.totalSent.Add(1)
				}

			case <-timer.C:
				log.Printf("Seeding completed. Total sent: %d", s.totalSent.Load())
				return

			case <-s.ctx.Done():
				log.Printf("Seeding stopped. Total sent: %d", s.totalSent.Load())
				return
			}
		}
	}()
}

func (s *Seeder) Stop() {
	if s.isRunning.Load() {
		s.cancel()
		s.wg.Wait()

		// Recreate context for next run
		s.ctx, s.cancel = context.WithCancel(context.Background())
	}
}

func (s *Seeder) Close() {
	s.Stop()
	s.writer.Close()
}

var (
	categories = []string{"design", "tutoring", "repair", "photography", "cleaning"}
	tagPool    = []string{"logo", "art", "math", "piano", "plumbing", "portrait", "wedding", "deep-clean", "urgent"}
	titles     = []string{"Logo design", "Math tutoring", "Pipe repair", "Portrait session", "Apartment cleaning"}
)

func generateFakeListing() map[string]interface{} {
	i := rand.Intn(len(categories))
	tags := []string{tagPool[rand.Intn(len(tagPool))], tagPool[rand.Intn(len(tagPool))]}

	return map[string]interface{}{
		"id":           uuid.NewString(),
		"title":        fmt.Sprintf("%s #%d", titles[i], rand.Intn(1000)),
		"description":  "Seeded listing for load and invalidation checks",
		"price":        float64(rand.Intn(20000))/100 + 5,
		"category":     categories[i],
		"tags":         tags,
		"provider_id":  fmt.Sprintf("provider_%d", rand.Intn(50)),
		"created_at":   time.Now().Format(time.RFC3339),
		"active":       rand.Intn(10) != 0,
		"rating_avg":   float64(rand.Intn(500)) / 100,
		"rating_count": rand.Intn(200),
	}
}

func main() {
	brokers := []string{"kafka:9092"}
	if envBrokers := os.Getenv("KAFKA_BROKERS"); envBrokers != "" {
		brokers = []string{envBrokers}
	}

	topic := "listing-events"
	if envTopic := os.Getenv("KAFKA_TOPIC"); envTopic != "" {
		topic = envTopic
	}

	seeder := NewSeeder(brokers, topic)
	defer seeder.Close()

	http.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req SeedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		if req.Rate <= 0 {
			req.Rate = 10
		}

		duration, err := time.ParseDuration(req.Duration)
		if err != nil {
			http.Error(w, "Invalid duration format: "+err.Error(), http.StatusBadRequest)
			return
		}

		seeder.Start(req.Rate, duration)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":   "started",
			"rate":     req.Rate,
			"duration": duration.String(),
		})
	})

	http.HandleFunc("/stop", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		seeder.Stop()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":     "stopped",
			"total_sent": seeder.totalSent.Load(),
		})
	})

	http.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"is_running": seeder.isRunning.Load(),
			"total_sent": seeder.totalSent.Load(),
		})
	})

	port := ":8082"
	if envPort := os.Getenv("SEEDER_PORT"); envPort != "" {
		port = ":" + envPort
	}

	log.Printf("Seeder server started on %s", port)
	log.Printf("Endpoints: POST /start, POST /stop, GET /stats")
	log.Fatal(http.ListenAndServe(port, nil))
}
