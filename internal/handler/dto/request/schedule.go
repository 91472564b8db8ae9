package request

type BlockDayRequest struct {
	// Open marks the block as still accepting requests.
	Open bool `json:"open"`
}
