package models

// Location is one entry from the church-data provider after cleanup:
// "N/A" leaders and blank addresses become nil, the raw underscored
// province value is title-cased, and the ID is prefixed with the type
// so provinces, districts and assemblies never collide.
type Location struct {
	Location_ID  string   `json:"id"`
	Type         string   `json:"type"`
	Name         string   `json:"name"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Address      *string  `json:"address"`
	Leader_Name  *string  `json:"leader_name"`
	Leader_Phone *string  `json:"leader_phone"`
	Province     *string  `json:"province"`
	Distance_Km  *float64 `json:"distance_km,omitempty"`
}
