package client

import "context"

// DashboardStats are the marketplace counters shown on the admin home
// screen. The server caches them for a minute; the SDK does not cache them
// again.
type DashboardStats struct {
	TotalUsers         int64 `json:"total_users"`
	TotalDoctors       int64 `json:"total_doctors"`
	TotalOrganizations int64 `json:"total_organizations"`
	ActiveServices     int64 `json:"active_services"`
	PendingDoctors     int64 `json:"pending_doctors"`
	PendingClinics     int64 `json:"pending_clinics"`
}

func (c *Client) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	if err := c.do(ctx, Op("dashboard.stats"), nil, nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Health probes the server's liveness endpoint. It bypasses the envelope:
// the health route replies with a bare JSON object.
func (c *Client) Health(ctx context.Context) error {
	op := Op("health.check")
	return c.doRaw(ctx, op)
}
