package dto

type Data[T any] struct {
	Data T `json:"data"`
}

type HealthStatus struct {
	Status string `json:"status"`
}

type HealthServices struct {
	Storage    string `json:"storage"`
	Websockets int    `json:"websocket_clients"`
}

type HealthReport struct {
	AppName           string         `json:"app_name"`
	AppVersion        string         `json:"app_version"`
	CurrentSystemTime string         `json:"current_system_time"`
	Language          string         `json:"language"`
	Status            HealthServices `json:"status"`
}
