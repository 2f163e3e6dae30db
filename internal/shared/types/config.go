package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Profile    string                 `json:"profile" yaml:"profile" toml:"profile"`
	ReportName string                 `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string               `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string                 `json:"dir" yaml:"dir" toml:"dir"`
	Addr       string                 `json:"addr" yaml:"addr" toml:"addr"`
	Parameters map[string]interface{} `json:"parameters" yaml:"parameters" toml:"parameters"`
}
