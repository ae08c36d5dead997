package domain

import "time"

// Receipt is a receipt image attached to a ledger detail. The URL is
// opaque; reachability is never verified here.
type Receipt struct {
	ID        string
	DetailID  string
	ImageURL  string
	CreatedAt time.Time
}

// Document is a supporting document attached to a ledger detail.
type Document struct {
	ID        string
	DetailID  string
	ImageURL  string
	CreatedAt time.Time
}
