package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	// viper ignores empty variables, so blanking them isolates the defaults.
	for _, key := range keys {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.StoreBackend != BackendDynamoDB || cfg.Port != "8080" || cfg.Timezone != "UTC" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.DueScanSchedule != "0 6 * * *" || cfg.DueScanTimeout != 2*time.Minute {
		t.Fatalf("unexpected scan defaults: %+v", cfg)
	}
	if cfg.SummaryCacheTTL != 5*time.Minute || cfg.UpdateMaxAttempts != 3 {
		t.Fatalf("unexpected tuning defaults: %+v", cfg)
	}
	if cfg.LedgerExchange != "recurring_events" || cfg.RecurringItemsTable != "recurring_items" {
		t.Fatalf("unexpected names: %+v", cfg)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("STORE_BACKEND", "MongoDB")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("TIMEZONE", "America/Sao_Paulo")
	t.Setenv("DUE_SCAN_TIMEOUT", "45s")
	t.Setenv("UPDATE_MAX_ATTEMPTS", "5")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.StoreBackend != BackendMongoDB || cfg.DueScanTimeout != 45*time.Second || cfg.UpdateMaxAttempts != 5 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Location().String() != "America/Sao_Paulo" {
		t.Fatalf("expected America/Sao_Paulo, got %s", cfg.Location())
	}
}

func TestLoadConfig_Rejects(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "unknown backend", env: map[string]string{"STORE_BACKEND": "postgres"}, want: "STORE_BACKEND"},
		{name: "mongo without uri", env: map[string]string{"STORE_BACKEND": "mongodb", "MONGODB_URI": ""}, want: "MONGODB_URI"},
		{name: "bad timezone", env: map[string]string{"TIMEZONE": "Mars/Olympus"}, want: "TIMEZONE"},
		{name: "bad cron", env: map[string]string{"DUE_SCAN_SCHEDULE": "every day"}, want: "DUE_SCAN_SCHEDULE"},
		{name: "zero attempts", env: map[string]string{"UPDATE_MAX_ATTEMPTS": "0"}, want: "UPDATE_MAX_ATTEMPTS"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := LoadConfig()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error to mention %s, got %v", tc.want, err)
			}
		})
	}
}
