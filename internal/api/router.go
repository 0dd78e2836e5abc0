package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mindmate/mindmate-server/internal/api/ratelimit"
	"github.com/mindmate/mindmate-server/internal/api/recovery"
	"github.com/mindmate/mindmate-server/internal/services"
)

// Deps bundles everything the router needs. Limiter may be nil to
// disable throttling (tests, CLI against a local server).
type Deps struct {
	Chat      *services.ChatService
	Moods     *services.MoodService
	Journal   *services.JournalService
	Wellness  *services.WellnessService
	Insights  *services.InsightsService
	IsHealthy func() bool
	Limiter   *ratelimit.LimiterStore
}

// NewRouter builds the full route table. The LLM-backed endpoints (chat,
// detect-mood, insights) sit behind the rate limiter; everything else is
// local computation and stays unthrottled.
func NewRouter(d Deps) *mux.Router {
	router := mux.NewRouter()
	router.Use(recovery.Middleware)

	chatHandler := NewChatHandler(d.Chat)
	moodHandler := NewMoodHandler(d.Moods)
	journalHandler := NewJournalHandler(d.Journal)
	wellnessHandler := NewWellnessHandler(d.Wellness)
	insightsHandler := NewInsightsHandler(d.Insights)
	healthHandler := NewHealthHandler(d.IsHealthy)

	throttled := func(h func(w http.ResponseWriter, r *http.Request)) http.Handler {
		if d.Limiter == nil {
			return http.HandlerFunc(h)
		}
		return ratelimit.Middleware(d.Limiter, chatKey)(http.HandlerFunc(h))
	}

	// Companion chat
	router.Handle("/api/chat", throttled(chatHandler.Chat)).Methods("POST")
	router.Handle("/api/detect-mood", throttled(chatHandler.DetectMood)).Methods("POST")

	// Mood tracking
	router.HandleFunc("/api/moods", moodHandler.SaveMood).Methods("POST")
	router.HandleFunc("/api/moods/{userId}", moodHandler.ListMoods).Methods("GET")
	router.HandleFunc("/api/mood-patterns/{userId}", moodHandler.Patterns).Methods("GET")

	// Journal
	router.HandleFunc("/api/journal", journalHandler.AddEntry).Methods("POST")
	router.HandleFunc("/api/journal/{userId}", journalHandler.ListEntries).Methods("GET")

	// Insights
	router.Handle("/api/insights/{userId}", throttled(insightsHandler.Insights)).Methods("GET")

	// Wellness
	router.HandleFunc("/api/wellness/checkin", wellnessHandler.AddCheckIn).Methods("POST")
	router.HandleFunc("/api/wellness/checkin/{userId}", wellnessHandler.ListCheckIns).Methods("GET")
	router.HandleFunc("/api/wellness/gratitude", wellnessHandler.AddGratitude).Methods("POST")
	router.HandleFunc("/api/wellness/gratitude/{userId}", wellnessHandler.ListGratitude).Methods("GET")
	router.HandleFunc("/api/wellness/activities", wellnessHandler.LogActivity).Methods("POST")
	router.HandleFunc("/api/wellness/activities/{userId}", wellnessHandler.ListActivities).Methods("GET")
	router.HandleFunc("/api/wellness/streak/{userId}", wellnessHandler.Streak).Methods("GET")

	// Health
	router.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")

	return router
}

// chatKey prefers the userId carried in the path or body-free query so
// throttling follows the user, not the NAT. Bodies are not read here;
// POST endpoints fall back to the remote address.
func chatKey(r *http.Request) string {
	if userID := mux.Vars(r)["userId"]; userID != "" {
		return "user:" + userID
	}
	if userID := r.URL.Query().Get("userId"); userID != "" {
		return "user:" + userID
	}
	return ratelimit.RemoteIPKey(r)
}
