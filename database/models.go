package database

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email        string         `gorm:"uniqueIndex"`
	PasswordHash datatypes.JSON `gorm:"type:json"`
	Name         string
	SessionToken string     `gorm:"index;unique"`
	Posts        []BlogPost `gorm:"foreignKey:AuthorID"`
	Comments     []Comment  `gorm:"foreignKey:AuthorID"`
}

type BlogPost struct {
	gorm.Model
	Title    string `gorm:"uniqueIndex"`
	Subtitle string
	// Date is assigned once at creation, human-formatted, never recomputed.
	Date     string
	Body     string `gorm:"type:text"`
	ImgURL   string
	AuthorID uint `gorm:"index"`
	Author   User
	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

type Comment struct {
	gorm.Model
	Text     string `gorm:"type:text"`
	AuthorID uint   `gorm:"index"`
	Author   User
	PostID   uint `gorm:"index"`
}
