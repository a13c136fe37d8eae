package db_models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Typed reading inputs, one variant per reading type. They only become a
// generic JSON document at the storage boundary (MarshalInput).

type HoroscopeInput struct {
	Name     string `json:"name"`
	DOB      string `json:"dob"`
	Time     string `json:"time"`
	Location string `json:"location"`
	Period   string `json:"period"`
}

type PalmInput struct {
	ImagePath string `json:"image_path"`
}

type CoffeeInput struct {
	ImagePaths []string `json:"image_paths"`
}

func MarshalInput(v any) (datatypes.JSON, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
