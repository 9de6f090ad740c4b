package metrics

// Observer receives tracker and persistence events.
type Observer interface {
	RecordVisit()
	RecordToggle(added bool)
	RecordPersistenceFailure(op string)
	RecordHydrated(component string, items int)
}

type NoopObserver struct{}

func (NoopObserver) RecordVisit()                      {}
func (NoopObserver) RecordToggle(_ bool)               {}
func (NoopObserver) RecordPersistenceFailure(_ string) {}
func (NoopObserver) RecordHydrated(_ string, _ int)    {}
