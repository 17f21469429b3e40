package importer

import (
	"net/url"

	"cloud.google.com/go/pubsub"
)

// ObjectRecord identifies one uploaded object.
type ObjectRecord struct {
	BucketName string `json:"bucketName"`
	ObjectKey  string `json:"objectKey"`
}

// Event is a storage trigger event naming one or more uploaded objects.
type Event struct {
	Records []ObjectRecord `json:"records"`
}

// GCS notification attribute names and the only event type the importer
// reacts to.
const (
	attrEventType = "eventType"
	attrBucketID  = "bucketId"
	attrObjectID  = "objectId"

	eventObjectFinalize = "OBJECT_FINALIZE"
)

// EventFromPubSub adapts a GCS bucket-notification message into an Event.
// Messages for anything other than a finalized object return ok=false and
// should be acked without processing.
func EventFromPubSub(m *pubsub.Message) (Event, bool) {
	if m.Attributes[attrEventType] != eventObjectFinalize {
		return Event{}, false
	}
	bucket := m.Attributes[attrBucketID]
	key := m.Attributes[attrObjectID]
	if bucket == "" || key == "" {
		return Event{}, false
	}
	return Event{Records: []ObjectRecord{{BucketName: bucket, ObjectKey: key}}}, true
}

// NormalizeKey percent-decodes an object key, treating '+' as space, the way
// keys arrive in storage notifications. Undecodable keys are used as-is.
func NormalizeKey(key string) string {
	decoded, err := url.QueryUnescape(key)
	if err != nil {
		return key
	}
	return decoded
}
