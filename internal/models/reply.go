package models

// Reply is the backend's answer to a write.
type Reply struct {
	StatusCode int
	OK         bool
}

// Success reports a 2xx status together with a true ok flag.
func (r Reply) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300 && r.OK
}
