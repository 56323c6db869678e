package inbound

// ListResponse is the flat key-value map of every stored setting.
type ListResponse map[string]string

type UpdateRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type UpdateResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (UpdateResponse) Message() string {
	return "Setting saved"
}

type RegistrationStatusResponse struct {
	Allowed bool `json:"allowed"`
}
