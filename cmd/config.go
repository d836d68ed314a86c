package cmd

import "time"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr     string
	CRMBaseURL    string
	GeoServiceURL string

	AutoApproveInvoices bool
	AbandonmentTimeout  time.Duration
	ApprovalGracePeriod time.Duration
}
