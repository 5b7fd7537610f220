package model

type Artist struct {
	ID                 string `gorm:"column:id" json:"id"`
	Name               string `gorm:"column:name" json:"name"`
	City               string `gorm:"column:city" json:"city"`
	State              string `gorm:"column:state" json:"state"`
	Phone              string `gorm:"column:phone" json:"phone"`
	Genres             Genres `gorm:"column:genres" json:"genres"`
	Website            string `gorm:"column:website" json:"website"`
	FacebookLink       string `gorm:"column:facebook_link" json:"facebook_link"`
	ImageLink          string `gorm:"column:image_link" json:"image_link"`
	SeekingVenue       bool   `gorm:"column:seeking_venue" json:"seeking_venue"`
	SeekingDescription string `gorm:"column:seeking_description" json:"seeking_description"`
}

func (m *Artist) TableName() string {
	return "artists"
}
