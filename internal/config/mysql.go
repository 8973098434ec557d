package config

import (
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB is the shared gorm handle; tests swap it for an in-memory database.
var DB *gorm.DB
var err error

// InitDB opens the MySQL connection described by DB_DSN.
func InitDB() {
	dsn := os.Getenv("DB_DSN")
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Error connecting to the database:", err)
	}
	log.Println("Database connected")
}
