package generator

// ProgressReporter receives callbacks while a run moves through discovery
// and extraction. Implementations must tolerate concurrent
// OnFileProcessed calls.
type ProgressReporter interface {
	OnDiscoveryStart()
	OnDiscoveryComplete(files int)
	OnExtractionStart(totalFiles int)
	OnFileProcessed(fileName string)
	OnExtractionComplete(stats *Stats)
}

// NoopReporter discards all progress events.
type NoopReporter struct{}

func (NoopReporter) OnDiscoveryStart()                 {}
func (NoopReporter) OnDiscoveryComplete(int)           {}
func (NoopReporter) OnExtractionStart(int)             {}
func (NoopReporter) OnFileProcessed(string)            {}
func (NoopReporter) OnExtractionComplete(*Stats)       {}
