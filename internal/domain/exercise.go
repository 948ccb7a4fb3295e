package domain

import "time"

// Exercise is a single entry in the exercise catalog. The catalog is owned
// by the library endpoints; the planning core only reads it.
type Exercise struct {
	ID              string   `bson:"_id" json:"id"`
	Name            string   `bson:"name" json:"name"`
	Equipment       string   `bson:"equipment,omitempty" json:"equipment,omitempty"`
	PrimaryMuscle   string   `bson:"primaryMuscle" json:"primaryMuscle"`
	SecondaryMuscle string   `bson:"secondaryMuscle,omitempty" json:"secondaryMuscle,omitempty"`
	MuscleGroups    []string `bson:"muscleGroups,omitempty" json:"muscleGroups,omitempty"`
	RestSeconds     int      `bson:"restSeconds,omitempty" json:"restSeconds,omitempty"`
	TargetNotes     string   `bson:"targetNotes,omitempty" json:"targetNotes,omitempty"`

	// Notes is the free-form note the user keeps on the exercise card.
	Notes string `bson:"notes,omitempty" json:"notes,omitempty"`

	// LastSession seeds the "last time" hint shown before any history has
	// been logged for this exercise. Once history exists the reconciled log
	// supersedes it.
	LastSession     []Set  `bson:"lastSession,omitempty" json:"lastSession,omitempty"`
	LastPerformedOn string `bson:"lastPerformedOn,omitempty" json:"lastPerformedOn,omitempty"`

	// VideoObjectKey points at an optional demonstration video in object
	// storage. Empty when no video has been attached.
	VideoObjectKey string `bson:"videoObjectKey,omitempty" json:"videoObjectKey,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
