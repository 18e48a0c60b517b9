package request

// CreateGuestRequest is the request body for creating a guest player
type CreateGuestRequest struct {
	DisplayName string `json:"display_name"`
}

// RegisterRequest is the request body for registering a player
type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateRoundRequest is the request body for starting a round. The
// authenticated caller always participates; PlayerIDs adds others.
type CreateRoundRequest struct {
	Language  string   `json:"language"`
	Rows      int      `json:"rows"`
	Cols      int      `json:"cols"`
	PlayerIDs []string `json:"player_ids,omitempty"`
}

// SubmitWordRequest is the request body for submitting a word
type SubmitWordRequest struct {
	Word string `json:"word"`
}
