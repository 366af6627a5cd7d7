package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"firebase": map[string]any{
			"projectId":       "",
			"credentialsPath": "",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"storage": map[string]any{
			"bucketUrl": "",
		},
		"insights": map[string]any{
			"apiKey": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "FIREBASE_PROJECTID", want: "firebase.projectId"},
		{envKey: "FIREBASE_CREDENTIALSPATH", want: "firebase.credentialsPath"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "INSIGHTS_APIKEY", want: "insights.apiKey"},
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
