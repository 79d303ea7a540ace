package dto

import "time"

type TimeResponse struct {
	Time time.Time `json:"time"`
}

type HealthResponse struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}
