package audit

import (
	"context"
	"time"

	"vindex-hq/vindex/pkg/vin"
)

// Record sources.
const (
	// SourceAPI marks records created by the HTTP API.
	SourceAPI = "api"
	// SourceCLI marks records created by the command line interface.
	SourceCLI = "cli"
)

// Record represents a single audited decode operation.
type Record struct {
	// ID is a UUID v4 assigned when the record is persisted.
	ID string `json:"id"`

	// RequestID ties the record to the originating HTTP request, when any.
	RequestID string `json:"request_id,omitempty"`

	// VIN is the canonical (uppercased) input.
	VIN string `json:"vin"`

	// WMI is the three-character world manufacturer identifier.
	WMI string `json:"wmi"`

	// Manufacturer, Country, and Region are the resolved identity fields.
	Manufacturer string `json:"manufacturer"`
	Country      string `json:"country"`
	Region       string `json:"region"`

	// ValidChecksum reports whether the check digit matched.
	ValidChecksum bool `json:"valid_checksum"`

	// Source identifies where the decode originated (SourceAPI, SourceCLI).
	Source string `json:"source"`

	// CreatedAt is when the record was persisted.
	CreatedAt time.Time `json:"created_at"`
}

// NewRecord builds a Record from a decode result. The ID and CreatedAt
// fields are filled in by the Recorder when the record is persisted.
func NewRecord(info *vin.Info, source string) *Record {
	return &Record{
		VIN:           string(info.VIN),
		WMI:           info.VIN.WMI(),
		Manufacturer:  info.Manufacturer,
		Country:       info.Country,
		Region:        info.Region,
		ValidChecksum: info.ValidChecksum,
		Source:        source,
	}
}

// Query defines filter parameters for querying audit records.
type Query struct {
	// Time range (inclusive).
	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`

	// Filters.
	WMI           string `json:"wmi,omitempty"`
	Source        string `json:"source,omitempty"`
	ValidChecksum *bool  `json:"valid_checksum,omitempty"`

	// Pagination.
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
}

// Backend defines the interface for audit storage backends.
// Implementations must be safe for concurrent use.
type Backend interface {
	// Save persists an audit record.
	Save(ctx context.Context, record *Record) error

	// Query retrieves audit records matching the query filters, newest
	// first. Returns an empty slice if no records match.
	Query(ctx context.Context, query *Query) ([]*Record, error)

	// Count returns the number of records matching the query filters.
	Count(ctx context.Context, query *Query) (int64, error)

	// DeleteOlderThan removes records created before the cutoff.
	// Returns the number of records deleted.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)

	// Close releases any resources held by the backend.
	Close() error
}
