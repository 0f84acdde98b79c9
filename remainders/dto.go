package remainders

// CreateRequest is the payload for creating a remainder. The owner is always
// the authenticated caller; there is intentionally no owner field in the
// shape, so one supplied by the client is dropped during decoding.
type CreateRequest struct {
	Title         string  `json:"title" validate:"required"`
	Description   *string `json:"description"`
	RemainderDate Date    `json:"remainder_date"`
	Permanent     bool    `json:"permanent"`
}

// UpdateRequest is the payload for a partial update (PATCH). All fields are
// pointers: a nil field was not supplied and keeps its prior value.
type UpdateRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	RemainderDate *Date   `json:"remainder_date"`
	Permanent     *bool   `json:"permanent"`
}

// ReplaceRequest is the payload for a full update (PUT). Fields are plain
// values: anything omitted resets to its type default, so a PUT without
// "permanent" always leaves the record non-permanent.
type ReplaceRequest struct {
	Title         string  `json:"title" validate:"required"`
	Description   *string `json:"description"`
	RemainderDate Date    `json:"remainder_date"`
	Permanent     bool    `json:"permanent"`
}

// Response is the public representation of a remainder. The owner is implied
// by the authenticated caller and never serialized.
type Response struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Description   *string `json:"description"`
	RemainderDate Date    `json:"remainder_date"`
	Permanent     bool    `json:"permanent"`
}

func responseFrom(rem *Remainder) *Response {
	return &Response{
		ID:            rem.ID,
		Title:         rem.Title,
		Description:   rem.Description,
		RemainderDate: rem.RemainderDate,
		Permanent:     rem.Permanent,
	}
}
