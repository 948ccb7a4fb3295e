package domain

// DayStatus is the completion state of one template day within a week.
type DayStatus string

const (
	StatusPending    DayStatus = "pending"
	StatusInProgress DayStatus = "in-progress"
	StatusComplete   DayStatus = "complete"
)

// DayType mirrors the three DayConfig variants.
type DayType string

const (
	DayStrength DayType = "strength"
	DayCardio   DayType = "cardio"
	DayRest     DayType = "rest"
)

// DayOverview is the per-day slice of a week overview. Strength fields are
// zero on cardio days and vice versa.
type DayOverview struct {
	Type        DayType   `json:"type"`
	Label       string    `json:"label"`
	Theme       string    `json:"theme,omitempty"`
	Description string    `json:"description,omitempty"`
	Status      DayStatus `json:"status"`

	// Cardio days.
	RunsLogged int           `json:"runsLogged,omitempty"`
	TargetRuns int           `json:"targetRuns,omitempty"`
	Entries    []CardioEntry `json:"entries,omitempty"`

	// Strength days.
	TotalSlots     int      `json:"totalSlots,omitempty"`
	CompletedSlots int      `json:"completedSlots,omitempty"`
	CompletionPct  int      `json:"completionPct,omitempty"`
	CompletedNames []string `json:"completedNames,omitempty"`
	RemainingNames []string `json:"remainingNames,omitempty"`

	LastLoggedOn string `json:"lastLoggedOn,omitempty"`
}

// WeekOverview is the derived per-week completion report. It is recomputed
// from a full snapshot on every request and never persisted.
type WeekOverview struct {
	WeekKey           string                 `json:"weekKey"`
	StrengthDaysTotal int                    `json:"strengthDaysTotal"`
	StrengthDaysDone  int                    `json:"strengthDaysDone"`
	CardioRunsLogged  int                    `json:"cardioRunsLogged"`
	CardioRunsTarget  int                    `json:"cardioRunsTarget"`
	ByDay             map[string]DayOverview `json:"byDay"`
}
