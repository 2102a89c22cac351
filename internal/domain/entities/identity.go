package entities

// Identity is the tenant and actor resolved once by the auth middleware and
// handed to use cases as-is.
type Identity struct {
	OrgID   string
	ActorID string
}

func (i Identity) Valid() bool {
	return i.OrgID != "" && i.ActorID != ""
}
