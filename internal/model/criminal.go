package model

// Criminal is a facility criminal-record entry. Photo holds a URL into the
// external object store; the upload itself happens outside this service.
type Criminal struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:128;not null" json:"name"`
	Age      int    `json:"age"`
	Crime    string `gorm:"size:256" json:"crime"`
	Threat   string `gorm:"size:32" json:"threat"`
	LastSeen string `gorm:"size:128" json:"lastSeen"`
	Status   string `gorm:"size:32" json:"status"`
	Record   string `gorm:"size:1000" json:"record"`
	Photo    string `gorm:"size:512" json:"photo"`
}
