package model

// HealthStatus represents the possible health status values
type HealthStatus string

const (
	StatusUp      HealthStatus = "UP"
	StatusDown    HealthStatus = "DOWN"
	StatusUnknown HealthStatus = "UNKNOWN"
)

// ComponentHealthStatus represents the health check structure of a application component
type ComponentHealthStatus struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthResponse represents the health check response of all application
type HealthResponse struct {
	Status   HealthStatus          `json:"status"`
	Database ComponentHealthStatus `json:"database"`
	Storage  ComponentHealthStatus `json:"storage"`
}

// NewComponentHealth builds a component status with a single message detail.
func NewComponentHealth(err error) ComponentHealthStatus {
	if err != nil {
		return ComponentHealthStatus{
			Status:  StatusDown,
			Details: map[string]string{"message": err.Error()},
		}
	}
	return ComponentHealthStatus{
		Status:  StatusUp,
		Details: map[string]string{"message": string(StatusUp)},
	}
}
