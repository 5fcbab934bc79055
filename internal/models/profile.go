package models

import "time"

// Profile лежит в хранилище по ключу users/{userId}.
// MusicPaused и MusicStarted — флаги настроек фонового плеера.
type Profile struct {
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PhotoURL     string     `json:"photoURL"`
	MusicPaused  bool       `json:"music_paused"`
	MusicStarted bool       `json:"music_started"`
	CreatedAt    time.Time  `json:"created_at"`
	LastUpdated  *time.Time `json:"last_updated,omitempty"`
}

// Identity — вошедший пользователь, приходит из провайдера аутентификации
type Identity struct {
	UID   string `json:"uid"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
