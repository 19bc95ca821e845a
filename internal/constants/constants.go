package constants

import "time"

var CacheTTL = struct {
	GenreSeeds    time.Duration
	AudioFeatures time.Duration
	TrackSearch   time.Duration
}{
	GenreSeeds:    24 * time.Hour,
	AudioFeatures: 12 * time.Hour,
	TrackSearch:   10 * time.Minute,
}

var RedisConfig = struct {
	ReadyTimeout time.Duration
}{
	ReadyTimeout: 5 * time.Second,
}

var AIInputLimits = struct {
	MaxAnswerLength   int
	MaxAnswers        int
	MaxOutputTokens   int
	AnalyzeTimeoutSec int
}{
	MaxAnswerLength:   500,
	MaxAnswers:        20,
	MaxOutputTokens:   2048,
	AnalyzeTimeoutSec: 30,
}

var RetryConfig = struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Jitter      time.Duration
}{
	MaxAttempts: 3,
	BaseDelay:   500 * time.Millisecond,
	Jitter:      250 * time.Millisecond,
}

var CircuitBreakerConfig = struct {
	FailureThreshold    int
	ResetTimeout        time.Duration
	RateLimitTimeout    time.Duration
	HealthCheckInterval time.Duration
	HealthCheckTimeout  time.Duration
}{
	FailureThreshold:    3,
	ResetTimeout:        30 * time.Second,
	RateLimitTimeout:    1 * time.Hour,
	HealthCheckInterval: 10 * time.Minute,
	HealthCheckTimeout:  10 * time.Second,
}

var Questionnaire = struct {
	CoreCount        int
	DefaultTotal     int
	MaxTotal         int
	RoutedCap        int
	VarietyMinWeight int
	ReservedFreeText int
}{
	CoreCount:        4,
	DefaultTotal:     10,
	MaxTotal:         15,
	RoutedCap:        5,
	VarietyMinWeight: 3,
	ReservedFreeText: 1,
}

var ResolverConfig = struct {
	MaxQueriesPerStrategy int
	SearchLimit           int
	SeedGenreLimit        int
	CatalogNativeLimit    int
	CatalogFeatureLookups int
	RecommendationCount   int
}{
	MaxQueriesPerStrategy: 5,
	SearchLimit:           10,
	SeedGenreLimit:        5,
	CatalogNativeLimit:    20,
	CatalogFeatureLookups: 10,
	RecommendationCount:   6,
}

var SpotifyConfig = struct {
	RequestTimeout time.Duration
}{
	RequestTimeout: 10 * time.Second,
}

var ServerConfig = struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}{
	ReadTimeout:     15 * time.Second,
	WriteTimeout:    30 * time.Second,
	IdleTimeout:     60 * time.Second,
	ShutdownTimeout: 10 * time.Second,
}
