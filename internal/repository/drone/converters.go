package drone

import (
	"fleet/internal/entities"
)

func ToDomain(d *DroneDB) *entities.Drone {
	if d == nil {
		return nil
	}

	droneEntity := &entities.Drone{
		ID:              d.ID,
		Code:            d.Code,
		Status:          entities.DroneStatusType(d.Status),
		BatteryLevel:    d.BatteryLevel,
		MaxPayload:      d.MaxPayload,
		LastMaintenance: d.LastMaintenance,
		NextMaintenance: d.NextMaintenance,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}

	// координаты пишутся и читаются только парой
	if d.Latitude != nil && d.Longitude != nil {
		droneEntity.Location = &entities.GeoPoint{
			Latitude:  *d.Latitude,
			Longitude: *d.Longitude,
		}
	}

	return droneEntity
}

func FromDomainModify(droneModify *entities.DroneModify) *DroneModifyDB {
	if droneModify == nil {
		return nil
	}
	droneDB := &DroneModifyDB{}

	if droneModify.ID != nil {
		droneDB.ID = droneModify.ID
	}
	if droneModify.Code != nil {
		droneDB.Code = droneModify.Code
	}
	if droneModify.Status != nil {
		status := droneModify.Status.String()
		droneDB.Status = &status
	}
	if droneModify.BatteryLevel != nil {
		droneDB.BatteryLevel = droneModify.BatteryLevel
	}
	if droneModify.MaxPayload != nil {
		droneDB.MaxPayload = droneModify.MaxPayload
	}
	if droneModify.Location != nil {
		latitude := droneModify.Location.Latitude
		longitude := droneModify.Location.Longitude
		droneDB.Latitude = &latitude
		droneDB.Longitude = &longitude
	}
	if droneModify.LastMaintenance != nil {
		droneDB.LastMaintenance = droneModify.LastMaintenance
	}
	if droneModify.NextMaintenance != nil {
		droneDB.NextMaintenance = droneModify.NextMaintenance
	}

	return droneDB
}

func ToDomainList(dronesDB []DroneDB) []entities.Drone {
	if len(dronesDB) == 0 {
		return []entities.Drone{}
	}

	result := make([]entities.Drone, len(dronesDB))
	for i, droneDB := range dronesDB {
		result[i] = *ToDomain(&droneDB)
	}
	return result
}
