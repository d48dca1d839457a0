package model

// LoadStatus tracks the dataset's retrieval lifecycle.
type LoadStatus int

const (
	StatusIdle LoadStatus = iota
	StatusLoading
	StatusLoaded
	StatusLoadFailed
)

func (s LoadStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusLoadFailed:
		return "load_failed"
	}
	return "unknown"
}

func (s LoadStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
