package domain

import "time"

// ReportKind discriminates lost from found reports.
// Both kinds share one shape and one matching code path.
type ReportKind string

// Available report kinds.
const (
	// KindLost is a report filed by someone who lost an item.
	KindLost ReportKind = "lost"

	// KindFound is a report filed by someone who found an item.
	KindFound ReportKind = "found"
)

// IsValid returns true if the kind is recognised.
func (k ReportKind) IsValid() bool {
	return k == KindLost || k == KindFound
}

// Opposite returns the kind matched against this one.
// Lost reports match found reports and vice versa.
func (k ReportKind) Opposite() ReportKind {
	if k == KindLost {
		return KindFound
	}
	return KindLost
}

// String returns the string representation.
func (k ReportKind) String() string {
	return string(k)
}

// Report represents a lost or found item report.
// Identity is immutable; only the resolved flag changes after creation.
type Report struct {
	// ID is the unique identifier for the report.
	ID string

	// Kind tags the report as lost or found.
	Kind ReportKind

	// Title is the short human-readable headline.
	Title string

	// Description is the free-text body of the report.
	Description string

	// ItemName optionally names the item ("wallet", "iPhone 12").
	ItemName string

	// Category is free text; normalised into a fixed set at read time.
	Category string

	// Location is free text describing where the item was lost or found.
	Location string

	// EventDate is when the item was lost or found.
	EventDate time.Time

	// OwnerID references the user who filed the report.
	OwnerID string

	// CreatedAt is when the report was filed.
	CreatedAt time.Time

	// Resolved is true once the item has been returned or reclaimed.
	Resolved bool
}

// Text joins the free-text fields fed to the text normaliser.
func (r *Report) Text() string {
	text := r.Title
	if r.Description != "" {
		text += " " + r.Description
	}
	if r.ItemName != "" {
		text += " " + r.ItemName
	}
	return text
}

// ReportFilters narrows a report store listing.
// Zero values mean no filtering on that field.
type ReportFilters struct {
	// Category restricts to one normalised category.
	Category string

	// ExcludeOwnerID drops reports filed by this user.
	// Used so a requester never matches their own reports.
	ExcludeOwnerID string

	// CreatedAfter restricts to reports filed after this instant.
	CreatedAfter time.Time
}
