package genui

import "time"

// MetadataExpiresAt is the start-event metadata key carrying the
// interaction deadline.
const MetadataExpiresAt = "expiresAt"

// Expired reports whether the document's interaction deadline has passed.
// Expiry only gates outbound interaction events; an expired document keeps
// rendering. An interaction at exactly the deadline is still forwarded.
func Expired(doc Document, now time.Time) bool {
	if doc.Metadata.ExpiresAt == nil {
		return false
	}
	return now.After(*doc.Metadata.ExpiresAt)
}

// expiryFromMetadata extracts the deadline from a stream's opaque
// metadata. The transport delivers it either as an RFC 3339 string or as
// unix milliseconds; values set programmatically may already be a
// time.Time. Anything else means no deadline.
func expiryFromMetadata(meta map[string]any) (time.Time, bool) {
	raw, ok := meta[MetadataExpiresAt]
	if !ok {
		return time.Time{}, false
	}

	switch v := raw.(type) {
	case time.Time:
		return v, true
	case string:
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	case float64:
		return time.UnixMilli(int64(v)), true
	case int64:
		return time.UnixMilli(v), true
	case int:
		return time.UnixMilli(int64(v)), true
	default:
		return time.Time{}, false
	}
}
