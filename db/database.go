package db

import "gorm.io/gorm"

type Database interface {
	GetDB() *gorm.DB
}

type GormDatabase struct {
	DB *gorm.DB
}

// Wrap adapts an already-open gorm handle (tests use an in-memory sqlite).
func Wrap(gdb *gorm.DB) Database {
	return &GormDatabase{DB: gdb}
}

func (g *GormDatabase) GetDB() *gorm.DB { return g.DB }
