package resolver

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder интерфейс для учета пропущенных правил и сгенерированных блоков
type MetricsRecorder interface {
	RecordSkippedRule(reason string)
	RecordVirtualBlocks(generated, emitted int)
}

type noopMetrics struct{}

func (noopMetrics) RecordSkippedRule(string)     {}
func (noopMetrics) RecordVirtualBlocks(int, int) {}
