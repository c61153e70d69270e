package utils

import (
	"log"

	"github.com/robfig/cron/v3"

	"lms/services"
)

// InitializeSessionScheduler sets up the daily purge of expired sessions
func InitializeSessionScheduler(sessions *services.SessionService) {
	log.Println("[SESSION-SCHEDULER] Initializing session scheduler...")

	c := cron.New()

	// Run daily at 3 AM to purge expired sessions
	c.AddFunc("0 3 * * *", func() {
		log.Println("[SESSION-SCHEDULER] Running daily session cleanup...")
		deleted, err := sessions.CleanupExpiredSessions()
		if err != nil {
			log.Printf("[SESSION-SCHEDULER] Error cleaning up sessions: %v", err)
			return
		}
		if deleted > 0 {
			log.Printf("[SESSION-SCHEDULER] Purged %d expired sessions", deleted)
		}
	})

	c.Start()
	log.Println("[SESSION-SCHEDULER] Session scheduler started - runs daily at 3 AM")
}
