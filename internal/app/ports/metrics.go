package ports

// ActionMetrics records terminal outcomes per action kind ("mint", "breed").
type ActionMetrics interface {
	RecordSuccess(kind string)
	RecordRejected(kind string)
	RecordFailure(kind string)
}
