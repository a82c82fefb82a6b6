package entity

type Player struct {
	Number int    `json:"number" yaml:"number"`
	Mark   string `json:"mark" yaml:"mark"`
}
