package response

// DashboardStatsResponse keeps the camelCase keys the admin frontend
// already reads.
type DashboardStatsResponse struct {
	TotalUsers       int64 `json:"totalUsers"`
	TotalServices    int64 `json:"totalServices"`
	TotalBookings    int64 `json:"totalBookings"`
	ApprovedBookings int64 `json:"approvedBookings"`
	PendingBookings  int64 `json:"pendingBookings"`
	RejectedBookings int64 `json:"rejectedBookings"`
}
