package models

import "time"

// Profile carries user-maintained fields plus a denormalized snapshot of the
// latest score per instrument. The snapshot is written by the assessment
// submission flow in a second, independent write after the assessment itself
// is stored; a failure between the two leaves the snapshot stale relative to
// the assessment history, and the history is the source of truth.
type Profile struct {
	ID            string     `bson:"_id,omitempty"`
	UserID        string     `bson:"userId"`
	Age           *int       `bson:"age,omitempty"`
	Locality      string     `bson:"locality,omitempty"`
	PersonalNotes string     `bson:"personalNotes,omitempty"`
	Goals         string     `bson:"goals,omitempty"`
	PHQ9Score     *int       `bson:"phq9Score,omitempty"`
	GAD7Score     *int       `bson:"gad7Score,omitempty"`
	GHQ12Score    *int       `bson:"ghq12Score,omitempty"`
	UpdatedAt     *time.Time `bson:"updatedAt,omitempty"`
}
