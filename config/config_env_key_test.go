package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"matching": map[string]any{
			"dedupWindow": "2h",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "MATCHING_DEDUPWINDOW", want: "matching.dedupWindow"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("MaxRequestBodySize = %q, want %q", cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)
	}
	if cfg.Storage.Driver != defaultStorageDriver || cfg.Storage.DeliveryLog != defaultStorageDriver {
		t.Fatalf("Storage = %+v, want memory for both", cfg.Storage)
	}
	if cfg.Matching.DedupWindow != DefaultDedupWindow {
		t.Fatalf("DedupWindow = %s, want %s", cfg.Matching.DedupWindow, DefaultDedupWindow)
	}
	if cfg.Matching.PassTimeout != defaultPassTimeout {
		t.Fatalf("PassTimeout = %s, want %s", cfg.Matching.PassTimeout, defaultPassTimeout)
	}
	if cfg.Matching.Interval != 0 {
		t.Fatalf("Interval = %s, want scheduler disabled", cfg.Matching.Interval)
	}
}

func TestApplyDefaults_DeliveryLogFollowsDriver(t *testing.T) {
	cfg := &Config{Storage: &StorageConfig{Driver: "postgres"}}

	applyDefaults(cfg)

	if cfg.Storage.DeliveryLog != "postgres" {
		t.Fatalf("DeliveryLog = %q, want postgres", cfg.Storage.DeliveryLog)
	}
}
