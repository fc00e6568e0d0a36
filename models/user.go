package models

import "time"

// User existe apenas como scaffolding da tabela users.
// Nenhuma rota usa este model hoje.
type User struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Username  string     `gorm:"not null;unique" json:"username" form:"username"`
	Password  string     `gorm:"not null" json:"password" form:"password"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
