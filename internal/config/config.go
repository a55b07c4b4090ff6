// v0
// internal/config/config.go
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	BindAddr     string        // e.g. ":8090"
	CacheTTL     time.Duration // e.g. 5m
	MaxBodyBytes int64         // request payload limit

	AuditEnabled   bool
	AuditTopic     string
	AuditBrokers   []string
	AuditAcks      int
	AuditQueueSize int
}

func FromEnv() Config {
	bind := os.Getenv("ESTIMATOR_BIND_ADDR")
	if bind == "" {
		bind = ":8090"
	}
	cacheTTL := 5 * time.Minute
	if s := os.Getenv("ESTIMATOR_CACHE_TTL"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 {
			cacheTTL = d
		}
	}
	maxBody := int64(10 << 20) // 10 MiB
	if s := os.Getenv("ESTIMATOR_MAX_BODY_BYTES"); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
			maxBody = n
		}
	}

	auditEnabled := parseBool(os.Getenv("AUDIT_ENABLED"))
	auditTopic := os.Getenv("AUDIT_TOPIC")
	if auditTopic == "" {
		auditTopic = "energy.estimates"
	}
	auditBrokers := splitCSV(os.Getenv("AUDIT_KAFKA_BROKERS"))
	auditAcks := 1
	if s := os.Getenv("AUDIT_ACKS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			auditAcks = n
		}
	}
	auditQueue := 256
	if s := os.Getenv("AUDIT_QUEUE_SIZE"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			auditQueue = n
		}
	}

	return Config{
		BindAddr:       bind,
		CacheTTL:       cacheTTL,
		MaxBodyBytes:   maxBody,
		AuditEnabled:   auditEnabled,
		AuditTopic:     auditTopic,
		AuditBrokers:   auditBrokers,
		AuditAcks:      auditAcks,
		AuditQueueSize: auditQueue,
	}
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
