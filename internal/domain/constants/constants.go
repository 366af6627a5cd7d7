// Package constants holds shared cross-layer constant values.
package constants

// Pub/Sub provider names accepted by the pubsub.provider config key.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Firestore collection names.
const (
	CollectionProducts = "products"
	CollectionOrders   = "orders"
	CollectionSettings = "settings"
)
