package request

import "strings"

// ListCompletedJobsQuery is bound from the query string of the archive
// listing endpoint.
type ListCompletedJobsQuery struct {
	CustomerID string `form:"customer_id"`
}

func (q ListCompletedJobsQuery) ResolveCustomerID() string {
	return strings.TrimSpace(q.CustomerID)
}
