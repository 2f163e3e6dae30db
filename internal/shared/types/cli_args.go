package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string
	Profile    string
	Set        []string
	ReportName string
	ReportType []string
	Dir        string
	NoBanner   bool
	Namespace  string
	Addr       string
}

// ReportTypes lists the report formats the simulation can be exported to.
var ReportTypes = []string{"csv", "json", "xlsx", "pdf"}
