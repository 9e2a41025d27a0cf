package sim

// Version and Description identify the framework in report banners.
const (
	Version     = "0.3.0"
	Description = "exit-time-sim SSA exit-time estimator"
)
