package model

// Meeting represents a live visitor meeting awaiting its visit.
//
// ScheduledDate is a calendar date in YYYY-MM-DD form; ScheduledTime is an
// opaque display string and is never parsed. CreatedAt is set once when the
// meeting is scheduled and never mutated, so GORM's automatic timestamping
// is disabled for it.
type Meeting struct {
	ID             int64  `gorm:"primaryKey" json:"id"`
	VisitorName    string `gorm:"size:128;not null" json:"visitorName"`
	VisitorContact string `gorm:"size:64" json:"visitorContact"`
	InmateName     string `gorm:"size:128;not null" json:"inmateName"`
	Purpose        string `gorm:"size:256" json:"purpose"`
	ScheduledDate  string `gorm:"size:10;index;not null" json:"scheduledDate"`
	ScheduledTime  string `gorm:"size:32" json:"scheduledTime"`
	Status         string `gorm:"size:32;not null" json:"status"`
	Remarks        string `gorm:"size:512" json:"remarks"`
	CreatedAt      string `gorm:"size:64;autoCreateTime:false;autoUpdateTime:false" json:"createdAt"`
}
