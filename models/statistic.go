package models

import "github.com/google/uuid"

// MetricType enumerates the kinds of portfolio statistics.
type MetricType string

const (
	MetricUptime       MetricType = "uptime"
	MetricResponseTime MetricType = "response_time"
	MetricAPICalls     MetricType = "api_calls"
	MetricProjects     MetricType = "projects"
	MetricClients      MetricType = "clients"
	MetricCustom       MetricType = "custom"
)

var metricTypeLabels = map[MetricType]string{
	MetricUptime:       "System Uptime",
	MetricResponseTime: "Response Time",
	MetricAPICalls:     "API Calls",
	MetricProjects:     "Projects",
	MetricClients:      "Clients",
	MetricCustom:       "Custom Metric",
}

func (m MetricType) Label() string {
	if label, ok := metricTypeLabels[m]; ok {
		return label
	}
	return string(m)
}

func (m MetricType) Valid() bool {
	_, ok := metricTypeLabels[m]
	return ok
}

// Statistic is a headline metric owned by a profile. Value is display text
// ("99.9%", "50ms", "1M+"), never a parsed number.
type Statistic struct {
	Model
	ProfileID   uuid.UUID  `json:"profile_id" db:"profile_id" gorm:"type:uuid;not null;index"`
	MetricType  MetricType `json:"metric_type" db:"metric_type" gorm:"type:text;not null"`
	Label       string     `json:"label" db:"label" gorm:"type:text;not null"`
	Value       string     `json:"value" db:"value" gorm:"type:text;not null"`
	Description string     `json:"description,omitempty" db:"description" gorm:"type:text"`
	Icon        string     `json:"icon,omitempty" db:"icon" gorm:"type:text"`
	Order       int        `json:"order" db:"order" gorm:"column:order;not null;default:0"`
	IsActive    bool       `json:"is_active" db:"is_active" gorm:"not null"`
}
