package basic

type UserMeta struct {
	UserId        string `json:"userId"`
	SessionUserId string `json:"sessionUserId"`
}

func (m *UserMeta) GetUserId() string {
	if m == nil {
		return ""
	}
	if m.SessionUserId != "" {
		return m.SessionUserId
	}
	return m.UserId
}

type PaginationOptions struct {
	Page  *int64 `json:"page,omitempty"`
	Limit *int64 `json:"limit,omitempty"`
}
