package request_models

// HoroscopeRequest fields are all optional; missing ones fall back to the
// account's birth profile.
type HoroscopeRequest struct {
	Name     string `json:"name"`
	DOB      string `json:"dob"`
	Time     string `json:"time"`
	Location string `json:"location"`
	Period   string `json:"period"`
}
