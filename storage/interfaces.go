package storage

import "coffee-dashboard/models"

// Exporter defines the interface for writing a bean snapshot somewhere
type Exporter interface {
	Export(beans []*models.Bean) error
}
