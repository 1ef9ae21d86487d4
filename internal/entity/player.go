package entity

import "github.com/google/uuid"

type Player struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color Cell   `json:"color"`
}

func NewPlayer(name string, color Cell) *Player {
	return &Player{
		ID:    uuid.New().String(),
		Name:  name,
		Color: color,
	}
}
