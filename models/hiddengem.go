package models

// State is a filter reference record (GET /states).
type State struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// AdventureType is a filter reference record (GET /adventure-types).
type AdventureType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// HiddenGem is a curated off-the-beaten-path destination. The backend omits
// most of the metadata fields freely, so everything past the name is optional.
type HiddenGem struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	State           *State          `json:"state,omitempty"`
	AdventureTypes  []AdventureType `json:"adventureTypes,omitempty"`
	Latitude        float64         `json:"latitude,omitempty"`
	Longitude       float64         `json:"longitude,omitempty"`
	NearestCity     string          `json:"nearestCity,omitempty"`
	BestTimeToVisit string          `json:"bestTimeToVisit,omitempty"`
	DifficultyLevel string          `json:"difficultyLevel,omitempty"`
	CostRange       string          `json:"costRange,omitempty"`
	ImageURLs       []string        `json:"imageUrls,omitempty"`
}

// HiddenGemPage is the backend's paginated envelope for hidden-gem queries.
// Pages are 0-indexed.
type HiddenGemPage struct {
	Content       []HiddenGem `json:"content"`
	Number        int         `json:"number"`
	Size          int         `json:"size"`
	TotalElements int64       `json:"totalElements"`
	TotalPages    int         `json:"totalPages"`
}

// HiddenGemInput is the admin create/update payload.
type HiddenGemInput struct {
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	StateID         int64    `json:"stateId,omitempty"`
	AdventureTypes  []int64  `json:"adventureTypeIds,omitempty"`
	Latitude        float64  `json:"latitude,omitempty"`
	Longitude       float64  `json:"longitude,omitempty"`
	NearestCity     string   `json:"nearestCity,omitempty"`
	BestTimeToVisit string   `json:"bestTimeToVisit,omitempty"`
	DifficultyLevel string   `json:"difficultyLevel,omitempty"`
	CostRange       string   `json:"costRange,omitempty"`
	ImageURLs       []string `json:"imageUrls,omitempty"`
}
