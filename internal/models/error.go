package models

type Error struct {
	Status int      `json:"status"`
	Error  []string `json:"error"`
}

// Response wraps successful payloads together with a confirmation message.
type Response[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type LoggerKey struct{}
