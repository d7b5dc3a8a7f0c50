package requests

type UpdateProfile struct {
	UserID string `json:"-"`

	Age           *int   `json:"age" validate:"omitempty,gte=0,lte=120"`
	Locality      string `json:"locality" validate:"omitempty,max=100"`
	PersonalNotes string `json:"personal_notes" validate:"omitempty,max=2000"`
	Goals         string `json:"goals" validate:"omitempty,max=2000"`
}
