package model

// ArchivedMeeting is the immutable copy of a meeting taken at the moment it
// left the live table. It has its own identity; the original meeting id is
// not preserved. Status here is the archival label ("Completed",
// "AUTO_COMPLETED", "STARTUP_AUTO_COMPLETED", "Cancelled"), not the live
// status value.
type ArchivedMeeting struct {
	ID             int64  `gorm:"primaryKey" json:"id"`
	VisitorName    string `gorm:"size:128;not null" json:"visitorName"`
	VisitorContact string `gorm:"size:64" json:"visitorContact"`
	InmateName     string `gorm:"size:128;not null" json:"inmateName"`
	Purpose        string `gorm:"size:256" json:"purpose"`
	ScheduledDate  string `gorm:"size:10;index" json:"scheduledDate"`
	ScheduledTime  string `gorm:"size:32" json:"scheduledTime"`
	Status         string `gorm:"size:32;not null" json:"status"`
	Remarks        string `gorm:"size:512" json:"remarks"`
	CreatedAt      string `gorm:"size:64;autoCreateTime:false;autoUpdateTime:false" json:"createdAt"`
}
