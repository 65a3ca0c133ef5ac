package entities

import "time"

// FeedItemType identifies the record kind behind a feed item
type FeedItemType string

// FeedItemType constants
const (
	FeedItemTypeTranscript FeedItemType = "transcript"
	FeedItemTypeIcebreaker FeedItemType = "icebreaker"
)

// FeedItem is the common display shape for both record kinds.
// Date is nil for icebreakers.
type FeedItem struct {
	ID          RecordID
	Type        FeedItemType
	Title       string
	Description string
	Date        *string
	Analysis    Analysis
	CreatedAt   string
}

// TimestampLayout renders store timestamps with fixed-width microseconds so
// that lexical order matches chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// FormatTimestamp renders t in UTC using TimestampLayout
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// NormalizeTimestamp rewrites an RFC 3339 timestamp into TimestampLayout.
// Values that do not parse are returned unchanged.
func NormalizeTimestamp(s string) string {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return s
	}
	return FormatTimestamp(t)
}
