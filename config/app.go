package config

// DefaultSummaryMaxLen 实体摘要（日志展示用）的默认最大长度
const DefaultSummaryMaxLen = 30

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	// SummaryMaxLen 实体名称在日志里的截断长度，<=0 时取 DefaultSummaryMaxLen
	SummaryMaxLen int `json:"summary_max_len" yaml:"summary_max_len"`
}
